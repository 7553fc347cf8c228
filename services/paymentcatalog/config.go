package paymentcatalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/commercekit/paymentcore/lib/myerrors"
)

// DefinitionConfig is the external configuration form of a payment method.
// Older configurations expressed supportedCurrencies either as a flat array
// of codes or as an object keyed by currency carrying countries and amount
// bounds. Both legacy forms are normalized here at load time; after
// normalization only the flat list or SupportedSettings remains.
type DefinitionConfig struct {
	Name                           string                            `json:"name"`
	RecurringName                  string                            `json:"recurringName,omitempty"`
	Disabled                       bool                              `json:"disabled,omitempty"`
	SupportedGeographies           []string                          `json:"supportedGeographies,omitempty"`
	SupportedCurrencies            json.RawMessage                   `json:"supportedCurrencies,omitempty"`
	SupportedSettings              map[string]CurrencySettingConfig  `json:"supportedSettings,omitempty"`
	SupportedRecurringPayments     bool                              `json:"supportedRecurringPayments,omitempty"`
	SingleSubscriptionForRecurring bool                              `json:"singleSubscriptionForRecurring,omitempty"`
	ExpressCheckout                bool                              `json:"expressCheckout,omitempty"`
	SubmitThenRedirect             bool                              `json:"submitThenRedirect,omitempty"`
	SupportedPaymentSession        *bool                             `json:"supportedPaymentSession,omitempty"`
}

type CurrencySettingConfig struct {
	MinAmount *int64   `json:"minAmount,omitempty"`
	MaxAmount *int64   `json:"maxAmount,omitempty"`
	Countries []string `json:"countries,omitempty"`
}

// Normalize converts a configuration entry into its runtime definition.
func (cfg DefinitionConfig) Normalize() (PaymentMethodDefinition, error) {
	def := PaymentMethodDefinition{
		Name:                           cfg.Name,
		RecurringName:                  cfg.RecurringName,
		Disabled:                       cfg.Disabled,
		SupportedGeographies:           cfg.SupportedGeographies,
		SupportedRecurringPayments:     cfg.SupportedRecurringPayments,
		SingleSubscriptionForRecurring: cfg.SingleSubscriptionForRecurring,
		ExpressCheckout:                cfg.ExpressCheckout,
		SubmitThenRedirect:             cfg.SubmitThenRedirect,
		SupportedPaymentSession:        cfg.SupportedPaymentSession,
	}

	for currency, setting := range cfg.SupportedSettings {
		if def.SupportedSettings == nil {
			def.SupportedSettings = map[string]CurrencySetting{}
		}
		def.SupportedSettings[currency] = CurrencySetting{
			MinAmount: setting.MinAmount,
			MaxAmount: setting.MaxAmount,
			Countries: setting.Countries,
		}
	}

	if len(cfg.SupportedCurrencies) == 0 {
		return def, nil
	}

	// Flat array form
	var codes []string
	if err := json.Unmarshal(cfg.SupportedCurrencies, &codes); err == nil {
		def.SupportedCurrencies = codes
		return def, nil
	}

	// Legacy object form: keyed by currency, folded into SupportedSettings.
	// An explicit supportedSettings entry for the same currency wins.
	var legacy map[string]CurrencySettingConfig
	if err := json.Unmarshal(cfg.SupportedCurrencies, &legacy); err != nil {
		return def, myerrors.NewInvalidInputError(fmt.Errorf("method %s: unsupported supportedCurrencies form: %s", cfg.Name, err))
	}
	for currency, setting := range legacy {
		if def.SupportedSettings == nil {
			def.SupportedSettings = map[string]CurrencySetting{}
		}
		if _, exists := def.SupportedSettings[currency]; exists {
			continue
		}
		def.SupportedSettings[currency] = CurrencySetting{
			MinAmount: setting.MinAmount,
			MaxAmount: setting.MaxAmount,
			Countries: setting.Countries,
		}
	}

	return def, nil
}

// NewCatalogFromJSON reads a configured catalog, normalizing legacy entries.
func NewCatalogFromJSON(r io.Reader) (*Catalog, error) {
	configs := []DefinitionConfig{}
	err := json.NewDecoder(r).Decode(&configs)
	if err != nil {
		return nil, myerrors.NewInvalidInputError(fmt.Errorf("error parsing catalog: %s", err))
	}

	defs := []PaymentMethodDefinition{}
	for _, cfg := range configs {
		def, err := cfg.Normalize()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return NewCatalog(defs...)
}
