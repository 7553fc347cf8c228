package tokenizer

// Flow is how a source moves from created to chargeable.
type Flow string

const (
	// FlowStandard sources become chargeable directly after creation.
	FlowStandard Flow = "standard"
	// FlowReceiver sources wait for funds pushed by the shopper.
	FlowReceiver Flow = "receiver"
	// FlowRedirect sources require the shopper to authorize on the
	// processor's pages first.
	FlowRedirect Flow = "redirect"
)

// State is the lifecycle state of a source.
type State string

const (
	StateChargeable      State = "chargeable"
	StatePendingFunds    State = "pending_funds"
	StatePendingRedirect State = "pending_redirect"
	StateConsumed        State = "consumed"
	StateFailed          State = "failed"
)

// Source is an opaque, time-limited reference to captured payment
// credentials.
type Source struct {
	UID           string
	Flow          Flow
	State         State
	MethodName    string
	AmountInCents int64
	Currency      string

	// RedirectURL is set for redirect-flow sources only.
	RedirectURL string

	// Billing and Shipping carry the verified addresses the processor hands
	// back, when it does.
	Billing  *SourceAddress
	Shipping *SourceAddress
}

// SourceAddress is the processor's address shape.
type SourceAddress struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Line1       string
	Line2       string
	City        string
	State       string
	PostalCode  string
	Country     string
}

// AutoAppliesToCart reports whether the source may be pushed onto the cart
// as the chosen payment method right after creation. Redirect-like flows
// must not auto-apply; the caller drives a separate redirect-and-confirm
// path.
func (s Source) AutoAppliesToCart() bool {
	return s.Flow == FlowStandard || s.Flow == FlowReceiver
}

// IsReadySubmitState is the single predicate gating any proceed-to-next-page
// action. pending_redirect only qualifies for submit-then-redirect methods.
func IsReadySubmitState(state State, submitThenRedirect bool) bool {
	switch state {
	case StateChargeable, StatePendingFunds, StateConsumed:
		return true
	case StatePendingRedirect:
		return submitThenRedirect
	default:
		return false
	}
}

// TokenError is the error payload of a failed tokenization. It travels
// inside the response, not as a Go error: the call itself succeeded.
type TokenError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e TokenError) Error() string {
	return e.Message
}

// Response is the tokenizer's answer: either an error payload or a source.
type Response struct {
	Error  *TokenError `json:"error,omitempty"`
	Source *Source     `json:"source,omitempty"`
}
