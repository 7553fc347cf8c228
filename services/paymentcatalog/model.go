package paymentcatalog

// PaymentMethodDefinition describes one configured payment method. The table
// is loaded once at startup and treated as read-only afterwards.
type PaymentMethodDefinition struct {
	Name string

	// RecurringName is the alternate wire-type used when the cart requires
	// recurring billing. Empty means the method has no recurring variant.
	RecurringName string

	Disabled bool

	// SupportedGeographies lists ISO country codes. Empty means unrestricted.
	SupportedGeographies []string

	// SupportedCurrencies is the flat currency list. A nil slice means
	// "no explicit list"; an explicit list takes precedence over
	// SupportedSettings.
	SupportedCurrencies []string

	// SupportedSettings keys per-currency restrictions. When present and no
	// explicit currency list is configured, it supersedes the flat lists:
	// a currency without an entry is not supported at all.
	SupportedSettings map[string]CurrencySetting

	SupportedRecurringPayments     bool
	SingleSubscriptionForRecurring bool

	ExpressCheckout    bool
	SubmitThenRedirect bool

	// SupportedPaymentSession defaults to supported when nil.
	SupportedPaymentSession *bool
}

type CurrencySetting struct {
	// MinAmount and MaxAmount are in minor units. Either bound is optional.
	MinAmount *int64
	MaxAmount *int64

	// Countries restricts geography for this currency. Empty means unrestricted.
	Countries []string
}

func (d PaymentMethodDefinition) PaymentSessionSupported() bool {
	return d.SupportedPaymentSession == nil || *d.SupportedPaymentSession
}

// WireType returns the type-name to put on the wire: the method's own name,
// or its recurring variant when the cart requires recurring billing.
func (d PaymentMethodDefinition) WireType(recurring bool) string {
	if recurring && d.RecurringName != "" {
		return d.RecurringName
	}

	return d.Name
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(v int64) *int64 {
	return &v
}
