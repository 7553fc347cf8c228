package paymentcatalog

import (
	"fmt"
	"sort"

	"github.com/commercekit/paymentcore/lib/myerrors"
)

// Catalog holds the configured payment-method definitions keyed by name.
type Catalog struct {
	byName map[string]PaymentMethodDefinition
}

func NewCatalog(defs ...PaymentMethodDefinition) (*Catalog, error) {
	byName := map[string]PaymentMethodDefinition{}
	for _, def := range defs {
		if def.Name == "" {
			return nil, myerrors.NewInvalidInputError(fmt.Errorf("payment method without a name"))
		}
		if _, exists := byName[def.Name]; exists {
			return nil, myerrors.NewInvalidInputError(fmt.Errorf("duplicate payment method %s", def.Name))
		}
		byName[def.Name] = def
	}

	return &Catalog{
		byName: byName,
	}, nil
}

func (cat *Catalog) Get(name string) (PaymentMethodDefinition, bool) {
	def, found := cat.byName[name]
	return def, found
}

// Enabled returns all non-disabled definitions, ordered by name.
func (cat *Catalog) Enabled() []PaymentMethodDefinition {
	defs := []PaymentMethodDefinition{}
	for _, def := range cat.byName {
		if !def.Disabled {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})

	return defs
}

// DefaultDefinitions is the built-in catalog. Deployments override or extend
// it through configuration.
func DefaultDefinitions() []PaymentMethodDefinition {
	return []PaymentMethodDefinition{
		{
			Name:                       "creditCard",
			SupportedRecurringPayments: true,
		},
		{
			Name:                       "payPal",
			RecurringName:              "payPalBilling",
			SupportedRecurringPayments: true,
		},
		{
			Name:                    "payPalCredit",
			SupportedGeographies:    []string{"US"},
			SupportedCurrencies:     []string{"USD"},
			SupportedPaymentSession: boolPtr(false),
		},
		{
			Name:                       "applePay",
			ExpressCheckout:            true,
			SupportedRecurringPayments: true,
		},
		{
			Name:                       "googlePay",
			ExpressCheckout:            true,
			SupportedRecurringPayments: true,
		},
		{
			Name:                           "klarnaCredit",
			RecurringName:                  "klarnaCreditRecurring",
			SupportedRecurringPayments:     true,
			SingleSubscriptionForRecurring: true,
			SupportedSettings: map[string]CurrencySetting{
				"USD": {MinAmount: int64Ptr(3500), Countries: []string{"US"}},
				"EUR": {MinAmount: int64Ptr(1000), Countries: []string{"DE", "AT", "NL", "FI"}},
				"GBP": {MinAmount: int64Ptr(3000), Countries: []string{"GB"}},
				"SEK": {Countries: []string{"SE"}},
				"NOK": {Countries: []string{"NO"}},
				"DKK": {Countries: []string{"DK"}},
			},
		},
		{
			Name:               "msts",
			SupportedSettings:  map[string]CurrencySetting{"USD": {Countries: []string{"US", "CA"}}, "EUR": {}, "GBP": {}},
			SubmitThenRedirect: true,
		},
		{
			Name: "dropIn",
		},
		{
			Name:                 "alipay",
			SupportedGeographies: []string{"CN"},
			SupportedCurrencies:  []string{"CNY", "USD"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                 "ccavenue",
			SupportedGeographies: []string{"IN"},
			SupportedCurrencies:  []string{"INR"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                 "bancontact",
			SupportedGeographies: []string{"BE"},
			SupportedCurrencies:  []string{"EUR"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                       "directDebit",
			RecurringName:              "directDebitRecurring",
			SupportedGeographies:       []string{"DE", "AT", "NL", "BE", "ES", "FR", "IE", "IT"},
			SupportedCurrencies:        []string{"EUR"},
			SupportedRecurringPayments: true,
		},
		{
			Name:                 "onlineBanking",
			SupportedGeographies: []string{"DE", "AT", "NL", "PL"},
			SupportedCurrencies:  []string{"EUR", "PLN"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                 "konbini",
			SupportedGeographies: []string{"JP"},
			SupportedCurrencies:  []string{"JPY"},
		},
		{
			Name:                    "wireTransfer",
			SupportedPaymentSession: boolPtr(false),
		},
		{
			Name:                 "payco",
			SupportedGeographies: []string{"KR"},
			SupportedCurrencies:  []string{"KRW"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                 "bPay",
			SupportedGeographies: []string{"AU"},
			SupportedCurrencies:  []string{"AUD"},
		},
		{
			Name:              "katapult",
			SupportedSettings: map[string]CurrencySetting{"USD": {MinAmount: int64Ptr(4500), MaxAmount: int64Ptr(350000), Countries: []string{"US"}}},
		},
		{
			Name:                 "trustly",
			SupportedGeographies: []string{"SE", "FI", "EE"},
			SupportedCurrencies:  []string{"SEK", "EUR"},
			SubmitThenRedirect:   true,
		},
		{
			Name:                 "ideal",
			SupportedGeographies: []string{"NL"},
			SupportedCurrencies:  []string{"EUR"},
			SubmitThenRedirect:   true,
		},
	}
}
