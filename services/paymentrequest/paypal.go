package paymentrequest

import (
	"context"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// NewPayPal builds the PayPal-family payload. PayPal rejects a well-formed
// but empty owner block, so owner and shipping are attached only when they
// carry a country plus a phone number or recipient name.
func NewPayPal(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector) Builder {
	return paypal{
		base: newBase(def, cfg, urls, shoppers, detector),
	}
}

type paypal struct {
	base
}

func (p paypal) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	payload, err := p.createObject(c, cart)
	if err != nil {
		return Result{}, err
	}

	if payload.Owner != nil && !ownerUsable(*payload.Owner) {
		payload.Owner = nil
	}

	shopper, err := p.shoppers.GetShopper(c)
	if err != nil {
		shopper = cartapi.Shopper{}
	}
	shipping := NewOwner(shippingAddress(cart), shopper)
	if ownerUsable(shipping) {
		payload.Details["shipping"] = shipping
	}
	payload.Details = p.applyOverrides(payload.Details)

	return Result{Payload: payload, Supported: true}, nil
}

func ownerUsable(owner Owner) bool {
	if owner.Address.Country == "" {
		return false
	}

	recipient := owner.FirstName + owner.LastName
	return owner.PhoneNumber != "" || recipient != ""
}
