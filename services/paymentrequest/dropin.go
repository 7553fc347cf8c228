package paymentrequest

import (
	"context"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// NewDropin builds the hosted drop-in payload. Drop-in only works on top of
// an active payment session; without one the method reports itself
// unsupported for the current cart and the caller updates its eligibility
// cache.
func NewDropin(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector) Builder {
	return dropin{
		base: newBase(def, cfg, urls, shoppers, detector),
	}
}

type dropin struct {
	base
}

func (d dropin) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	payload, err := d.createObject(c, cart)
	if err != nil {
		return Result{}, err
	}
	payload.Details = d.applyOverrides(payload.Details)

	return Result{
		Payload:   payload,
		Supported: cart.HasActivePaymentSession(),
	}, nil
}
