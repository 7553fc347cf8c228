package cartsync

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myhttpclient"
	"github.com/commercekit/paymentcore/services/cartapi"
)

func TestGatewayGetCart(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodGet, "https://backend.example/carts/cart-123", nil).
		Return(http.StatusOK, []byte(`{"id":"cart-123","pricing":{"orderTotal":{"currency":"EUR","value":12300}}}`), nil)
	gateway := NewGateway("https://backend.example", sender)

	// when
	cart, err := gateway.GetCart(c, "cart-123")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "cart-123", cart.ID)
	assert.Equal(t, int64(12300), cart.OrderTotal().Value)
}

func TestGatewayGetCartNotFound(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodGet, "https://backend.example/carts/nope", nil).
		Return(http.StatusNotFound, []byte(`{}`), nil)
	gateway := NewGateway("https://backend.example", sender)

	// when
	_, err := gateway.GetCart(c, "nope")

	// then
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
}

func TestGatewayApplyAddressesSendsBothInOneCall(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://backend.example/carts/cart-123/addresses", gomock.Any()).
		DoAndReturn(func(c context.Context, method string, url string, body []byte) (int, []byte, error) {
			assert.Contains(t, string(body), `"billingAddress"`)
			assert.Contains(t, string(body), `"shippingAddress"`)
			assert.Contains(t, string(body), `"Marc"`)
			return http.StatusOK, []byte(`{"id":"cart-123"}`), nil
		})
	gateway := NewGateway("https://backend.example", sender)

	// when
	cart, err := gateway.ApplyAddresses(c, "cart-123",
		cartapi.Address{FirstName: "Marc", Country: "NL"},
		cartapi.Address{FirstName: "Eva", Country: "NL"})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "cart-123", cart.ID)
}

func TestGatewayApplySource(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://backend.example/carts/cart-123/paymentSource", []byte(`{"sourceId":"src_1"}`)).
		Return(http.StatusOK, []byte(`{"id":"cart-123"}`), nil)
	gateway := NewGateway("https://backend.example", sender)

	// when
	cart, err := gateway.ApplySource(c, "cart-123", "src_1")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "cart-123", cart.ID)
}

func TestGatewayUpstreamStatusPassedAlong(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://backend.example/carts/cart-123/shippingOption", gomock.Any()).
		Return(http.StatusConflict, []byte(`{}`), nil)
	gateway := NewGateway("https://backend.example", sender)

	// when
	_, err := gateway.ApplyShippingOption(c, "cart-123", "express")

	// then
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, myerrors.GetHTTPStatus(err))
}

func TestGatewayGetShopper(t *testing.T) {
	c, ctrl, sender := setupGateway(t)
	defer ctrl.Finish()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodGet, "https://backend.example/shoppers/current", nil).
		Return(http.StatusOK, []byte(`{"id":"shopper-1","emailAddress":"marc@home.nl"}`), nil)
	gateway := NewGateway("https://backend.example", sender)

	// when
	shopper, err := gateway.GetShopper(c)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "shopper-1", shopper.UID)
	assert.Equal(t, "marc@home.nl", shopper.EmailAddress)
}

func setupGateway(t *testing.T) (context.Context, *gomock.Controller, *myhttpclient.MockHTTPSender) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	sender := myhttpclient.NewMockHTTPSender(ctrl)

	return c, ctrl, sender
}
