package paymentrequest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

func TestKlarnaEnrichesAmountBasedPayload(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	createdAt := time.Date(2020, 3, 1, 12, 0, 0, 0, time.UTC)
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{
		EmailAddress:     "marc@home.nl",
		AccountCreatedAt: &createdAt,
		HasPaidBefore:    true,
	}, nil).Times(2)
	builder := NewKlarna(definition("klarnaCredit"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.LineItems[0].Product.Image = "https://img.example/lamp.png"

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, []klarnaItem{
		{Name: "Lamp", Quantity: 1, Amount: 10000, Tax: 2100, ImageURL: "https://img.example/lamp.png"},
	}, result.Payload.Details["items"])
	assert.Equal(t, true, result.Payload.Details["hasPaidBefore"])
	assert.Equal(t, "2020-03-01T12:00:00Z", result.Payload.Details["accountCreatedDate"])
	assert.NotContains(t, result.Payload.Details, "accountUpdatedDate")
	assert.Equal(t, false, result.Payload.Details["autoRenewal"])

	// shipping falls back to the billing address when none is set
	shipping, ok := result.Payload.Details["shipping"].(Owner)
	assert.True(t, ok)
	assert.Equal(t, "Marc", shipping.FirstName)
	assert.Equal(t, "NL", shipping.Address.Country)
}

func TestKlarnaSkipsEnrichmentWithPaymentSession(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: the session already holds the purchase details server-side
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	builder := NewKlarna(definition("klarnaCredit"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.PaymentSession = &cartapi.PaymentSession{ID: "ps-456", Status: "active"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "ps-456", result.Payload.SessionID)
	assert.NotContains(t, result.Payload.Details, "items")
	assert.NotContains(t, result.Payload.Details, "shipping")
	assert.NotContains(t, result.Payload.Details, "autoRenewal")
}

func TestKlarnaSubscriptionSignals(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil).Times(2)
	builder := NewKlarna(definition("klarnaCredit"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.LineItems[0].Product.CustomAttributes = []cartapi.CustomAttribute{
		{Name: "isAutomatic", Value: "true"},
		{Name: "subscriptionSource", Value: "storefront"},
	}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Equal(t, true, result.Payload.Details["autoRenewal"])
	assert.Equal(t, "storefront", result.Payload.Details["subscriptionSource"])
}

func TestKlarnaUsesShippingAddressWhenSet(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil).Times(2)
	builder := NewKlarna(definition("klarnaCredit"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.ShippingAddress = cartapi.Address{
		FirstName: "Eva",
		LastName:  "Grol",
		Line1:     "Otherstreet 1",
		City:      "Amsterdam",
		Country:   "NL",
	}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	shipping := result.Payload.Details["shipping"].(Owner)
	assert.Equal(t, "Eva", shipping.FirstName)
	assert.Equal(t, "Otherstreet 1", shipping.Address.Line1)
}
