package paymentcatalog

import (
	"context"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/services/cartapi"
)

// EligibilityResult carries the three criteria a method must pass before the
// shopper may submit with it.
type EligibilityResult struct {
	GeographyOk bool
	CurrencyOk  bool
	AmountOk    bool
}

func (r EligibilityResult) Eligible() bool {
	return r.GeographyOk && r.CurrencyOk && r.AmountOk
}

// MessageProvider supplies the user-displayable mismatch messages. Supplied
// by the surrounding application; may perform I/O.
//
//go:generate mockgen -source=eligibility.go -package paymentcatalog -destination eligibility_mock.go MessageProvider,Notifier
type MessageProvider interface {
	GetGeographiesErrorMsg(c context.Context, methodName string) (string, error)
	GetCurrenciesErrorMsg(c context.Context, methodName string) (string, error)
	GetAmountErrorMsg(c context.Context, methodName string) (string, error)
}

// Notifier surfaces a mismatch message to the shopper.
type Notifier interface {
	Notify(c context.Context, methodName string, message string)
}

type Evaluator struct {
	messages MessageProvider
	notifier Notifier
	detector Detector
	logger   mylog.Logger
}

func NewEvaluator(messages MessageProvider, notifier Notifier, detector Detector) *Evaluator {
	return &Evaluator{
		messages: messages,
		notifier: notifier,
		detector: detector,
		logger:   mylog.New("eligibility"),
	}
}

// Evaluate decides whether a method may be used for the given currency,
// country and cart total (minor units). During the init phase ineligible
// methods are hidden silently; afterwards each failed criterion surfaces a
// method-specific message.
func (e *Evaluator) Evaluate(c context.Context, def PaymentMethodDefinition, currency string, country string, cartTotal int64, initPhase bool) EligibilityResult {
	currencies, geographies, setting, known := resolveRestrictions(def, currency)
	if !known {
		// A settings table without an entry for this currency means the
		// currency is not supported at all, not unrestricted.
		result := EligibilityResult{GeographyOk: true, CurrencyOk: false, AmountOk: true}
		e.report(c, def.Name, result, initPhase)
		return result
	}

	result := EligibilityResult{
		CurrencyOk:  len(currencies) == 0 || contains(currencies, currency),
		GeographyOk: len(geographies) == 0 || contains(geographies, country),
		AmountOk:    amountWithinBounds(setting, cartTotal),
	}

	e.report(c, def.Name, result, initPhase)

	return result
}

// resolveRestrictions returns the effective currency list, geography list and
// per-currency setting. An explicit flat currency list takes precedence over
// the settings table.
func resolveRestrictions(def PaymentMethodDefinition, currency string) ([]string, []string, *CurrencySetting, bool) {
	if def.SupportedCurrencies != nil {
		return def.SupportedCurrencies, def.SupportedGeographies, nil, true
	}

	if def.SupportedSettings != nil {
		setting, found := def.SupportedSettings[currency]
		if !found {
			return nil, nil, nil, false
		}

		return []string{currency}, setting.Countries, &setting, true
	}

	return nil, def.SupportedGeographies, nil, true
}

func amountWithinBounds(setting *CurrencySetting, cartTotal int64) bool {
	if setting == nil {
		return true
	}
	if setting.MinAmount != nil && cartTotal < *setting.MinAmount {
		return false
	}
	if setting.MaxAmount != nil && cartTotal > *setting.MaxAmount {
		return false
	}

	return true
}

func (e *Evaluator) report(c context.Context, methodName string, result EligibilityResult, initPhase bool) {
	if initPhase || result.Eligible() {
		return
	}

	if !result.GeographyOk {
		e.notify(c, methodName, e.messages.GetGeographiesErrorMsg)
	}
	if !result.CurrencyOk {
		e.notify(c, methodName, e.messages.GetCurrenciesErrorMsg)
	}
	if !result.AmountOk {
		e.notify(c, methodName, e.messages.GetAmountErrorMsg)
	}
}

func (e *Evaluator) notify(c context.Context, methodName string, fetch func(c context.Context, methodName string) (string, error)) {
	msg, err := fetch(c, methodName)
	if err != nil {
		e.logger.Log(c, methodName, mylog.SeverityWarn, "Error fetching eligibility message for %s: %s", methodName, err)
		return
	}

	e.notifier.Notify(c, methodName, msg)
}

// SupportsRecurringPayments reports whether the method can take this cart's
// recurring-billing requirement. Computed from the same cart snapshot as the
// wire-type substitution so the two can not diverge.
func (e *Evaluator) SupportsRecurringPayments(def PaymentMethodDefinition, cart *cartapi.CartSnapshot) bool {
	if !e.detector.UseRecurringPayment(cart) {
		return true
	}
	if !def.SupportedRecurringPayments {
		return false
	}
	if def.SingleSubscriptionForRecurring && cart != nil && cart.TotalItemsInCart > 1 {
		return false
	}

	return true
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}
