package cartapi

import (
	"fmt"
	"time"
)

// CartSnapshot is the read-model of the commerce backend's cart resource.
// The json shapes below are the compatibility surface with that backend and
// must not be changed independently of it.
type CartSnapshot struct {
	ID               string            `json:"id"`
	BillingAddress   Address           `json:"billingAddress"`
	ShippingAddress  Address           `json:"shippingAddress"`
	LineItems        []LineItem        `json:"lineItems"`
	Pricing          Pricing           `json:"pricing"`
	ShippingOptions  []ShippingOption  `json:"shippingOptions"`
	PaymentSession   *PaymentSession   `json:"paymentSession,omitempty"`
	TotalItemsInCart int               `json:"totalItemsInCart"`
}

type Address struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	PhoneNumber  string         `json:"phoneNumber"`
	EmailAddress string         `json:"emailAddress"`
	Organization string         `json:"companyName"`
	Line1        string         `json:"line1"`
	Line2        string         `json:"line2"`
	City         string         `json:"city"`
	State        string         `json:"countrySubdivision"`
	PostalCode   string         `json:"postalCode"`
	Country      string         `json:"country"`
	Additional   AdditionalInfo `json:"additionalAddressInfo"`
}

type AdditionalInfo struct {
	Neighborhood      string `json:"neighborhood"`
	Division          string `json:"division"`
	PhoneticFirstName string `json:"phoneticFirstName"`
	PhoneticLastName  string `json:"phoneticLastName"`
}

// IsEmpty reports whether the backend returned an empty address object.
// The backend sends {} rather than null, so presence of the field says nothing.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

type LineItem struct {
	ID       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Product  Product  `json:"product"`
	Pricing  ItemCost `json:"pricing"`
}

type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"displayName"`
	Image            string            `json:"thumbnailImage"`
	CustomAttributes []CustomAttribute `json:"customAttributes"`
}

type CustomAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AttributeValue returns the value of the named custom attribute, or "".
func (p Product) AttributeValue(name string) string {
	for _, attr := range p.CustomAttributes {
		if attr.Name == name {
			return attr.Value
		}
	}

	return ""
}

type ItemCost struct {
	Sales    Amount `json:"salesPrice"`
	Tax      Amount `json:"productTax"`
	Quantity Amount `json:"totalPrice"`
}

type Pricing struct {
	OrderTotal          Amount `json:"orderTotal"`
	Subtotal            Amount `json:"subtotal"`
	Tax                 Amount `json:"tax"`
	Discount            Amount `json:"discount"`
	ShippingAndHandling Amount `json:"shippingAndHandling"`
}

type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %.2f", a.Currency, float64(a.Value)/100.0)
}

type ShippingOption struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Cost        Amount `json:"cost"`
}

type PaymentSession struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// HasActivePaymentSession reports whether the cart carries a server-held
// pre-authorization context usable instead of an explicit amount.
func (cs *CartSnapshot) HasActivePaymentSession() bool {
	return cs != nil && cs.PaymentSession != nil && cs.PaymentSession.ID != ""
}

// OrderTotal never panics on a missing cart; derived totals default to zero.
func (cs *CartSnapshot) OrderTotal() Amount {
	if cs == nil {
		return Amount{}
	}

	return cs.Pricing.OrderTotal
}

// Shopper is the shopper record of the commerce backend. It supplements the
// cart where the billing address is incomplete and feeds buyer-history
// signals for methods that require them.
type Shopper struct {
	UID              string     `json:"id"`
	EmailAddress     string     `json:"emailAddress"`
	AccountCreatedAt *time.Time `json:"createdOn,omitempty"`
	AccountUpdatedAt *time.Time `json:"lastModifiedOn,omitempty"`
	HasPaidBefore    bool       `json:"hasPaidBefore"`
}
