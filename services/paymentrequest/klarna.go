package paymentrequest

import (
	"context"
	"time"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// NewKlarna builds the Klarna-family payload. Without a payment session the
// processor wants the full purchase picture: itemization with tax and image
// metadata, a shipping block, buyer-history signals and subscription flags.
// With a session all of that is already held server-side.
func NewKlarna(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector) Builder {
	return klarna{
		base: newBase(def, cfg, urls, shoppers, detector),
	}
}

type klarna struct {
	base
}

type klarnaItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"`
	Tax      int64  `json:"tax"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (k klarna) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	payload, err := k.createObject(c, cart)
	if err != nil {
		return Result{}, err
	}

	if payload.SessionID == "" {
		k.enrich(c, cart, payload.Details)
	}
	payload.Details = k.applyOverrides(payload.Details)

	return Result{Payload: payload, Supported: true}, nil
}

func (k klarna) enrich(c context.Context, cart *cartapi.CartSnapshot, details Details) {
	details["items"] = k.items(cart)

	shopper, err := k.shoppers.GetShopper(c)
	if err != nil {
		shopper = cartapi.Shopper{}
	}

	details["shipping"] = NewOwner(shippingAddress(cart), shopper)

	if err == nil {
		details["hasPaidBefore"] = shopper.HasPaidBefore
		if shopper.AccountCreatedAt != nil {
			details["accountCreatedDate"] = shopper.AccountCreatedAt.Format(time.RFC3339)
		}
		if shopper.AccountUpdatedAt != nil {
			details["accountUpdatedDate"] = shopper.AccountUpdatedAt.Format(time.RFC3339)
		}
	}

	autoRenewal, source := subscriptionSignals(cart)
	details["autoRenewal"] = autoRenewal
	if source != "" {
		details["subscriptionSource"] = source
	}
}

func (k klarna) items(cart *cartapi.CartSnapshot) []klarnaItem {
	if cart == nil {
		return nil
	}

	items := []klarnaItem{}
	for _, item := range cart.LineItems {
		items = append(items, klarnaItem{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Amount:   item.Pricing.Quantity.Value,
			Tax:      item.Pricing.Tax.Value,
			ImageURL: item.Product.Image,
		})
	}

	return items
}

// shippingAddress falls back to the billing address when the cart carries an
// empty shipping object.
func shippingAddress(cart *cartapi.CartSnapshot) cartapi.Address {
	if cart == nil {
		return cartapi.Address{}
	}
	if cart.ShippingAddress.IsEmpty() {
		return cart.BillingAddress
	}

	return cart.ShippingAddress
}

func subscriptionSignals(cart *cartapi.CartSnapshot) (bool, string) {
	if cart == nil {
		return false, ""
	}

	autoRenewal := false
	source := ""
	for _, item := range cart.LineItems {
		if item.Product.AttributeValue("isAutomatic") == "true" {
			autoRenewal = true
		}
		if source == "" {
			source = item.Product.AttributeValue("subscriptionSource")
		}
	}

	return autoRenewal, source
}
