package paymentrequest

import (
	"context"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// NewRedirect serves the hosted-redirect family (Alipay, Ccavenue,
// Bancontact and the like). Their payload is deliberately minimal: the
// processor collects everything else on its own pages. Redirect methods
// never ride a payment session, the amount is always explicit.
func NewRedirect(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector, includeItems bool) Builder {
	return redirect{
		base:         newBase(def, cfg, urls, shoppers, detector),
		includeItems: includeItems,
	}
}

type redirect struct {
	base
	includeItems bool
}

func (r redirect) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	owner := r.owner(c, cart)

	details, err := r.details(c)
	if err != nil {
		return Result{}, err
	}
	if r.includeItems {
		details["items"] = r.displayItems(cart)
	}

	payload := Payload{
		Type:       r.def.WireType(r.detector.UseRecurringPayment(cart)),
		UpstreamID: r.cfg.UpstreamID,
		Owner:      &owner,
		Currency:   r.currency(cart),
		Amount:     cart.OrderTotal().Value,
		Details:    r.applyOverrides(details),
	}

	return Result{Payload: payload, Supported: true}, nil
}
