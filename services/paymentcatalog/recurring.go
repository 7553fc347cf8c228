package paymentcatalog

import (
	"github.com/commercekit/paymentcore/services/cartapi"
)

const (
	attrIsAutomatic        = "isAutomatic"
	attrSubscriptionSource = "subscriptionSource"
)

// Detector decides whether a cart requires recurring billing. The one
// predicate gates both the recurring wire-type substitution and the
// recurring-eligibility check.
type Detector struct {
	forceRecurring bool
}

func NewDetector(forceRecurring bool) Detector {
	return Detector{
		forceRecurring: forceRecurring,
	}
}

func (d Detector) UseRecurringPayment(cart *cartapi.CartSnapshot) bool {
	if d.forceRecurring {
		return true
	}
	if cart == nil {
		return false
	}

	for _, item := range cart.LineItems {
		if item.Product.AttributeValue(attrIsAutomatic) == "true" {
			return true
		}
	}

	return false
}
