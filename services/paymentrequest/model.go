package paymentrequest

import (
	"encoding/json"
)

// Payload is the request body handed to the external tokenizer. It is built
// fresh on every create/update call and never persisted. The method-specific
// sub-object is serialized under a key equal to the wire type, which is why
// marshalling is implemented by hand.
type Payload struct {
	Type       string
	UpstreamID string
	Owner      *Owner
	Currency   string
	Amount     int64
	SessionID  string

	// Express-checkout (wallet) fields
	Country         string
	Total           *Total
	DisplayItems    []DisplayItem
	ShippingOptions []WalletShippingOption
	RequestShipping bool

	Details Details
}

// Details carries the method-specific fields of the <type> sub-object.
// Static configuration overrides are merged in last and win.
type Details map[string]any

func (p Payload) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"type":       p.Type,
		"upstreamId": p.UpstreamID,
		"currency":   p.Currency,
	}
	if p.Owner != nil {
		out["owner"] = p.Owner
	}

	// A live payment session implies the amount server-side.
	if p.SessionID != "" {
		out["sessionId"] = p.SessionID
	} else {
		out["amount"] = p.Amount
	}

	if p.Country != "" {
		out["country"] = p.Country
	}
	if p.Total != nil {
		out["total"] = p.Total
	}
	if len(p.DisplayItems) > 0 {
		out["displayItems"] = p.DisplayItems
	}
	if len(p.ShippingOptions) > 0 {
		out["shippingOptions"] = p.ShippingOptions
		out["requestShipping"] = p.RequestShipping
	}

	if len(p.Details) > 0 {
		out[p.Type] = p.Details
	}

	return json.Marshal(out)
}

// Owner is the payer identity/address block sent to the tokenizer. String
// fields are always present, defaulting to "".
type Owner struct {
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	PhoneNumber  string                `json:"phoneNumber"`
	Email        string                `json:"email"`
	Organization string                `json:"organization"`
	Address      OwnerAddress          `json:"address"`
	Additional   AdditionalAddressInfo `json:"additionalAddressInfo"`
}

type OwnerAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type AdditionalAddressInfo struct {
	Neighborhood      string `json:"neighborhood"`
	Division          string `json:"division"`
	PhoneticFirstName string `json:"phoneticFirstName"`
	PhoneticLastName  string `json:"phoneticLastName"`
}

type Total struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type DisplayItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type WalletShippingOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Amount      int64  `json:"amount"`
	Description string `json:"detail,omitempty"`
}

// WalletUpdate is returned to the wallet sheet after an address or shipping
// option change. The wallet can not consume exceptions, so failures travel
// as a structured status instead.
type WalletUpdate struct {
	Status          string                 `json:"status"`
	Total           *Total                 `json:"total,omitempty"`
	DisplayItems    []DisplayItem          `json:"displayItems,omitempty"`
	ShippingOptions []WalletShippingOption `json:"shippingOptions,omitempty"`
	Error           *WalletError           `json:"error,omitempty"`
}

type WalletError struct {
	Message string `json:"message"`
}

const (
	WalletStatusSuccess = "success"
	WalletStatusFailure = "failure"
)

func NewWalletErrorObject(message string) WalletUpdate {
	return WalletUpdate{
		Status: WalletStatusFailure,
		Error: &WalletError{
			Message: message,
		},
	}
}
