package paymentrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

func TestPayPalKeepsUsableOwner(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil).Times(2)
	builder := NewPayPal(definition("payPal"), config(), urls, shoppers, paymentcatalog.NewDetector(false))

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.NotNil(t, result.Payload.Owner)
	assert.Equal(t, "Marc", result.Payload.Owner.FirstName)
	// the billing address doubles as the shipping block
	shipping := result.Payload.Details["shipping"].(Owner)
	assert.Equal(t, "Marc", shipping.FirstName)
}

func TestPayPalDropsUnusableOwner(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: an address without country can not be sent to PayPal
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil).Times(2)
	builder := NewPayPal(definition("payPal"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.BillingAddress.Country = ""

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Nil(t, result.Payload.Owner)
	assert.NotContains(t, result.Payload.Details, "shipping")
}

func TestPayPalCountryWithoutRecipientIsUnusable(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given: country set but neither phone nor recipient name
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil).Times(2)
	builder := NewPayPal(definition("payPal"), config(), urls, shoppers, paymentcatalog.NewDetector(false))
	cart := exampleCart()
	cart.BillingAddress = cartapi.Address{Country: "NL"}

	// when
	result, err := builder.CreateObject(c, cart)

	// then
	assert.NoError(t, err)
	assert.Nil(t, result.Payload.Owner)
}
