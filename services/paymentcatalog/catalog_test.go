package paymentcatalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalog(t *testing.T) {
	// when
	catalog, err := NewCatalog(DefaultDefinitions()...)

	// then
	assert.NoError(t, err)
	def, found := catalog.Get("klarnaCredit")
	assert.True(t, found)
	assert.Equal(t, "klarnaCreditRecurring", def.RecurringName)

	_, found = catalog.Get("doesNotExist")
	assert.False(t, found)
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	// when
	_, err := NewCatalog(
		PaymentMethodDefinition{Name: "payPal"},
		PaymentMethodDefinition{Name: "payPal"},
	)

	// then
	assert.Error(t, err)
}

func TestNewCatalogRejectsMissingName(t *testing.T) {
	// when
	_, err := NewCatalog(PaymentMethodDefinition{})

	// then
	assert.Error(t, err)
}

func TestEnabledSkipsDisabled(t *testing.T) {
	// given
	catalog, err := NewCatalog(
		PaymentMethodDefinition{Name: "payPal"},
		PaymentMethodDefinition{Name: "alipay", Disabled: true},
		PaymentMethodDefinition{Name: "creditCard"},
	)
	assert.NoError(t, err)

	// when
	enabled := catalog.Enabled()

	// then: disabled methods dropped, stable name order
	assert.Len(t, enabled, 2)
	assert.Equal(t, "creditCard", enabled[0].Name)
	assert.Equal(t, "payPal", enabled[1].Name)
}

func TestWireType(t *testing.T) {
	def := PaymentMethodDefinition{Name: "klarnaCredit", RecurringName: "klarnaCreditRecurring"}

	assert.Equal(t, "klarnaCredit", def.WireType(false))
	assert.Equal(t, "klarnaCreditRecurring", def.WireType(true))

	// no recurring variant configured
	plain := PaymentMethodDefinition{Name: "iDeal"}
	assert.Equal(t, "iDeal", plain.WireType(true))
}

func TestNormalizeFlatCurrencyArray(t *testing.T) {
	// given
	catalog, err := NewCatalogFromJSON(strings.NewReader(`[
		{"name": "iDeal", "supportedCurrencies": ["EUR"], "supportedGeographies": ["NL"]}
	]`))

	// then
	assert.NoError(t, err)
	def, found := catalog.Get("iDeal")
	assert.True(t, found)
	assert.Equal(t, []string{"EUR"}, def.SupportedCurrencies)
	assert.Nil(t, def.SupportedSettings)
}

func TestNormalizeLegacyCurrencyObject(t *testing.T) {
	// given: the older object form carrying countries and bounds
	catalog, err := NewCatalogFromJSON(strings.NewReader(`[
		{"name": "klarnaCredit", "supportedCurrencies": {
			"USD": {"minAmount": 3500, "countries": ["US"]},
			"EUR": {"minAmount": 1000, "countries": ["DE", "NL"]}
		}}
	]`))

	// then: folded into the settings table
	assert.NoError(t, err)
	def, _ := catalog.Get("klarnaCredit")
	assert.Nil(t, def.SupportedCurrencies)
	assert.Equal(t, int64(3500), *def.SupportedSettings["USD"].MinAmount)
	assert.Equal(t, []string{"US"}, def.SupportedSettings["USD"].Countries)
	assert.Equal(t, []string{"DE", "NL"}, def.SupportedSettings["EUR"].Countries)
}

func TestNormalizeExplicitSettingsWin(t *testing.T) {
	// given: same currency in both the legacy object and supportedSettings
	catalog, err := NewCatalogFromJSON(strings.NewReader(`[
		{"name": "klarnaCredit",
		 "supportedCurrencies": {"USD": {"minAmount": 1}},
		 "supportedSettings": {"USD": {"minAmount": 3500}}}
	]`))

	// then
	assert.NoError(t, err)
	def, _ := catalog.Get("klarnaCredit")
	assert.Equal(t, int64(3500), *def.SupportedSettings["USD"].MinAmount)
}

func TestNormalizeRejectsMalformedCurrencies(t *testing.T) {
	// when
	_, err := NewCatalogFromJSON(strings.NewReader(`[
		{"name": "iDeal", "supportedCurrencies": 42}
	]`))

	// then
	assert.Error(t, err)
}

func TestNewCatalogFromJSONMalformedDocument(t *testing.T) {
	// when
	_, err := NewCatalogFromJSON(strings.NewReader(`{not json`))

	// then
	assert.Error(t, err)
}
