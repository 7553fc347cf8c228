package paymentrequest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

func TestCreateObjectWithAmount(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{EmailAddress: "marc@home.nl"}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.True(t, result.Supported)
	assert.Equal(t, "visaCheckout", result.Payload.Type)
	assert.Equal(t, "merchant-123", result.Payload.UpstreamID)
	assert.Equal(t, "EUR", result.Payload.Currency)
	assert.Equal(t, int64(12300), result.Payload.Amount)
	assert.Empty(t, result.Payload.SessionID)
	assert.Equal(t, "https://shop.example/return", result.Payload.Details["returnUrl"])
	assert.Equal(t, "https://shop.example/cancel", result.Payload.Details["cancelUrl"])
}

func TestCreateObjectWithPaymentSession(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.PaymentSession = &cartapi.PaymentSession{ID: "ps-456", Status: "active"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "ps-456", result.Payload.SessionID)
	assert.Zero(t, result.Payload.Amount)

	encoded, err := json.Marshal(result.Payload)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"sessionId":"ps-456"`)
	assert.NotContains(t, string(encoded), `"amount"`)
}

func TestCreateObjectSessionNotSupportedByMethod(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: the method opted out of session-based payloads
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	def := definition("enterPay")
	no := false
	def.SupportedPaymentSession = &no
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.PaymentSession = &cartapi.PaymentSession{ID: "ps-456", Status: "active"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Empty(t, result.Payload.SessionID)
	assert.Equal(t, int64(12300), result.Payload.Amount)
}

func TestCreateObjectRecurringSubstitutesWireType(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: a line item flagged as an automatic renewal
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	def := definition("klarnaCredit")
	def.RecurringName = "klarnaCreditRecurring"
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.LineItems[0].Product.CustomAttributes = []cartapi.CustomAttribute{
		{Name: "isAutomatic", Value: "true"},
	}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "klarnaCreditRecurring", result.Payload.Type)

	encoded, err := json.Marshal(result.Payload)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"type":"klarnaCreditRecurring"`)
	assert.Contains(t, string(encoded), `"klarnaCreditRecurring":{`)
}

func TestCreateObjectForceRecurring(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: recurring forced by configuration, nothing in the cart
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	def := definition("klarnaCredit")
	def.RecurringName = "klarnaCreditRecurring"
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(true))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "klarnaCreditRecurring", result.Payload.Type)
}

func TestCreateObjectRecurringWithoutVariantKeepsName(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(true))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "visaCheckout", result.Payload.Type)
}

func TestCreateObjectExpressCheckout(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	def := definition("applePay")
	def.ExpressCheckout = true
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "NL", result.Payload.Country)
	assert.Equal(t, &Total{Label: "Order Total", Amount: 12300}, result.Payload.Total)
	assert.Equal(t, []DisplayItem{
		{Label: "Lamp", Amount: 10000},
		{Label: "Tax", Amount: 2100},
		{Label: "Shipping", Amount: 200},
	}, result.Payload.DisplayItems)
	assert.Equal(t, []WalletShippingOption{
		{ID: "standard", Label: "Standard shipping", Amount: 200, Description: "Standard shipping"},
	}, result.Payload.ShippingOptions)
	assert.True(t, result.Payload.RequestShipping)
}

func TestCreateObjectDiscountAsNegativeDisplayItem(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	def := definition("applePay")
	def.ExpressCheckout = true
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.Pricing.Discount = cartapi.Amount{Currency: "EUR", Value: 500}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Contains(t, result.Payload.DisplayItems, DisplayItem{Label: "Discount", Amount: -500})
}

func TestCreateObjectOwnerEmailFallback(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: billing address without an email
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{EmailAddress: "marc@home.nl"}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.BillingAddress.EmailAddress = ""

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "marc@home.nl", result.Payload.Owner.Email)
	assert.Equal(t, "Marc", result.Payload.Owner.FirstName)
}

func TestCreateObjectShopperFetchFailureDoesNotBlock(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, assert.AnError)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Marc", result.Payload.Owner.FirstName)
	assert.Empty(t, result.Payload.Owner.Email)
}

func TestCreateObjectOverridesWin(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	cfg := config()
	cfg.Overrides = Details{
		"returnUrl": "https://override.example/return",
		"theme":     "dark",
	}
	builder := NewStandard(definition("visaCheckout"), cfg, urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "https://override.example/return", result.Payload.Details["returnUrl"])
	assert.Equal(t, "dark", result.Payload.Details["theme"])
	assert.Equal(t, "https://shop.example/cancel", result.Payload.Details["cancelUrl"])
}

func TestCreateObjectReturnURLFailure(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("", assert.AnError)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	_, err := builder.CreateObject(c, exampleCart())

	// then
	assert.Error(t, err)
}

func TestCreateObjectNilCart(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewStandard(definition("visaCheckout"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, nil)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "USD", result.Payload.Currency)
	assert.Zero(t, result.Payload.Amount)
}

func TestUpdateObjectRecomputesWalletSheet(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	def := definition("applePay")
	def.ExpressCheckout = true
	builder := NewStandard(def, config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	update, err := builder.UpdateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, WalletStatusSuccess, update.Status)
	assert.Equal(t, &Total{Label: "Order Total", Amount: 12300}, update.Total)
	assert.Len(t, update.ShippingOptions, 1)
	assert.Nil(t, update.Error)
}

func TestDropinRequiresPaymentSession(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: no active payment session on the cart
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewDropin(definition("dropIn"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.False(t, result.Supported)
}

func TestDropinWithPaymentSession(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewDropin(definition("dropIn"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.PaymentSession = &cartapi.PaymentSession{ID: "ps-456", Status: "active"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.True(t, result.Supported)
	assert.Equal(t, "ps-456", result.Payload.SessionID)
}

func TestRedirectBuildsMinimalPayload(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: redirect methods never ride a payment session
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewRedirect(definition("alipay"), config(), urls, shoppers, paymentcatalog.NewDetector(false), false)
	cart := exampleCart()
	cart.PaymentSession = &cartapi.PaymentSession{ID: "ps-456", Status: "active"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Empty(t, result.Payload.SessionID)
	assert.Equal(t, int64(12300), result.Payload.Amount)
	assert.Empty(t, result.Payload.Country)
	assert.Nil(t, result.Payload.Total)
	assert.NotContains(t, result.Payload.Details, "items")
}

func TestRedirectWithItems(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewRedirect(definition("ccavenue"), config(), urls, shoppers, paymentcatalog.NewDetector(false), true)

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Contains(t, result.Payload.Details, "items")
}

func TestFactorySelectsVariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// given
	deps := Deps{
		Config:   config(),
		URLs:     NewMockURLHooks(ctrl),
		Shoppers: NewMockShopperReader(ctrl),
		Detector: paymentcatalog.NewDetector(false),
	}

	// when/then
	assert.IsType(t, klarna{}, New(definition("klarnaCredit"), deps))
	assert.IsType(t, paypal{}, New(definition("payPal"), deps))
	assert.IsType(t, paypal{}, New(definition("payPalCredit"), deps))
	assert.IsType(t, &MSTS{}, New(definition("msts"), deps))
	assert.IsType(t, dropin{}, New(definition("dropIn"), deps))
	assert.IsType(t, redirect{}, New(definition("alipay"), deps))
	assert.IsType(t, base{}, New(definition("visaCheckout"), deps))

	redirecting := definition("enterPay")
	redirecting.SubmitThenRedirect = true
	assert.IsType(t, redirect{}, New(redirecting, deps))
}

func setup(t *testing.T) (context.Context, *gomock.Controller, *MockURLHooks, *MockShopperReader) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	urls := NewMockURLHooks(ctrl)
	shoppers := NewMockShopperReader(ctrl)

	return c, ctrl, urls, shoppers
}

func definition(name string) paymentcatalog.PaymentMethodDefinition {
	return paymentcatalog.PaymentMethodDefinition{
		Name: name,
	}
}

func config() Config {
	return Config{
		UpstreamID:      "merchant-123",
		DefaultCountry:  "US",
		DefaultCurrency: "USD",
	}
}

func exampleCart() *cartapi.CartSnapshot {
	return &cartapi.CartSnapshot{
		ID: "cart-123",
		BillingAddress: cartapi.Address{
			FirstName:    "Marc",
			LastName:     "Grol",
			EmailAddress: "marc@home.nl",
			Line1:        "Mystreet 79",
			City:         "Utrecht",
			PostalCode:   "1234 AB",
			Country:      "NL",
		},
		LineItems: []cartapi.LineItem{
			{
				ID:       "item-1",
				Quantity: 1,
				Product: cartapi.Product{
					ID:   "product-1",
					Name: "Lamp",
				},
				Pricing: cartapi.ItemCost{
					Sales:    cartapi.Amount{Currency: "EUR", Value: 10000},
					Tax:      cartapi.Amount{Currency: "EUR", Value: 2100},
					Quantity: cartapi.Amount{Currency: "EUR", Value: 10000},
				},
			},
		},
		Pricing: cartapi.Pricing{
			OrderTotal:          cartapi.Amount{Currency: "EUR", Value: 12300},
			Subtotal:            cartapi.Amount{Currency: "EUR", Value: 10000},
			Tax:                 cartapi.Amount{Currency: "EUR", Value: 2100},
			ShippingAndHandling: cartapi.Amount{Currency: "EUR", Value: 200},
		},
		ShippingOptions: []cartapi.ShippingOption{
			{ID: "standard", Description: "Standard shipping", Cost: cartapi.Amount{Currency: "EUR", Value: 200}},
		},
		TotalItemsInCart: 1,
	}
}
