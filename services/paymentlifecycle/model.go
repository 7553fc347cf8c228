package paymentlifecycle

import (
	"time"
)

// State is the lifecycle state of one payment instance.
type State string

const (
	StateCreated       State = "created"
	StateRequestBuilt  State = "requestBuilt"
	StateTokenizing    State = "tokenizing"
	StateSourceApplied State = "sourceApplied"
	StateCompleted     State = "completed"

	// StateErrorReported is absorbing: no transition leaves it.
	StateErrorReported State = "errorReported"
)

// PaymentContext is the persisted record of one payment instance, keyed by
// cart UID so a redirect return can resume where the shopper left off.
type PaymentContext struct {
	PaymentUID    string
	CartUID       string
	MethodName    string
	State         State
	AmountInCents int64
	Currency      string
	Country       string

	SourceUID   string
	SourceFlow  string
	SourceState string

	OriginalReturnURL string
	LastError         string

	CreatedAt    time.Time
	LastModified *time.Time
}

// allowed captures the legal transitions. ErrorReported is reachable from
// the two states with external calls in flight.
var allowed = map[State][]State{
	StateCreated:       {StateRequestBuilt},
	StateRequestBuilt:  {StateTokenizing, StateErrorReported},
	StateTokenizing:    {StateSourceApplied, StateErrorReported},
	StateSourceApplied: {StateCompleted},
}

func (s State) canTransitionTo(next State) bool {
	for _, candidate := range allowed[s] {
		if candidate == next {
			return true
		}
	}

	return false
}
