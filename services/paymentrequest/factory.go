package paymentrequest

import (
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// Deps bundles the collaborators every builder variant may need.
type Deps struct {
	Config   Config
	MSTS     MSTSConfig
	URLs     URLHooks
	Shoppers ShopperReader
	Detector paymentcatalog.Detector
	Fields   SupplierFieldReader
	UUIDer   myuuid.UUIDer
}

// New picks the builder variant for a method definition.
func New(def paymentcatalog.PaymentMethodDefinition, deps Deps) Builder {
	switch def.Name {
	case "klarnaCredit":
		return NewKlarna(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector)
	case "payPal", "payPalCredit":
		return NewPayPal(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector)
	case "msts":
		return NewMSTS(def, deps.Config, deps.MSTS, deps.URLs, deps.Shoppers, deps.Detector, deps.Fields, deps.UUIDer)
	case "dropIn":
		return NewDropin(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector)
	case "alipay", "ccavenue", "bancontact":
		return NewRedirect(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector, def.Name == "ccavenue")
	default:
		if def.SubmitThenRedirect && !def.ExpressCheckout {
			return NewRedirect(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector, false)
		}
		return NewStandard(def, deps.Config, deps.URLs, deps.Shoppers, deps.Detector)
	}
}
