package cartsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myhttpclient"
	"github.com/commercekit/paymentcore/services/cartapi"
)

// Gateway is the commerce backend's cart-mutation contract. Every mutation
// accepts a partial payload and returns the full refreshed snapshot.
//
//go:generate mockgen -source=gateway.go -package cartsync -destination gateway_mock.go Gateway
type Gateway interface {
	GetCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error)

	// ApplyAddresses pushes billing and shipping in one atomic cart update.
	ApplyAddresses(c context.Context, cartUID string, billing cartapi.Address, shipping cartapi.Address) (*cartapi.CartSnapshot, error)

	ApplySource(c context.Context, cartUID string, sourceUID string) (*cartapi.CartSnapshot, error)
	ApplyShippingOption(c context.Context, cartUID string, optionUID string) (*cartapi.CartSnapshot, error)

	GetShopper(c context.Context) (cartapi.Shopper, error)
}

type httpGateway struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func NewGateway(baseURL string, sender myhttpclient.HTTPSender) Gateway {
	return &httpGateway{
		baseURL: baseURL,
		sender:  sender,
	}
}

func (g *httpGateway) GetCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error) {
	return g.fetchCart(c, http.MethodGet, fmt.Sprintf("%s/carts/%s", g.baseURL, cartUID), nil)
}

func (g *httpGateway) ApplyAddresses(c context.Context, cartUID string, billing cartapi.Address, shipping cartapi.Address) (*cartapi.CartSnapshot, error) {
	body, err := json.Marshal(map[string]cartapi.Address{
		"billingAddress":  billing,
		"shippingAddress": shipping,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error marshalling addresses for cart %s: %s", cartUID, err))
	}

	return g.fetchCart(c, http.MethodPost, fmt.Sprintf("%s/carts/%s/addresses", g.baseURL, cartUID), body)
}

func (g *httpGateway) ApplySource(c context.Context, cartUID string, sourceUID string) (*cartapi.CartSnapshot, error) {
	body, err := json.Marshal(map[string]string{
		"sourceId": sourceUID,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error marshalling source for cart %s: %s", cartUID, err))
	}

	return g.fetchCart(c, http.MethodPost, fmt.Sprintf("%s/carts/%s/paymentSource", g.baseURL, cartUID), body)
}

func (g *httpGateway) ApplyShippingOption(c context.Context, cartUID string, optionUID string) (*cartapi.CartSnapshot, error) {
	body, err := json.Marshal(map[string]string{
		"shippingOptionId": optionUID,
	})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error marshalling shipping option for cart %s: %s", cartUID, err))
	}

	return g.fetchCart(c, http.MethodPost, fmt.Sprintf("%s/carts/%s/shippingOption", g.baseURL, cartUID), body)
}

func (g *httpGateway) GetShopper(c context.Context) (cartapi.Shopper, error) {
	status, respPayload, err := g.sender.Send(c, http.MethodGet, fmt.Sprintf("%s/shoppers/current", g.baseURL), nil)
	if err != nil {
		return cartapi.Shopper{}, myerrors.NewInternalError(fmt.Errorf("error fetching shopper: %s", err))
	}
	if status != http.StatusOK {
		return cartapi.Shopper{}, myerrors.NewErrorWithStatus(fmt.Errorf("error fetching shopper: status %d", status), status)
	}

	shopper := cartapi.Shopper{}
	err = json.Unmarshal(respPayload, &shopper)
	if err != nil {
		return cartapi.Shopper{}, myerrors.NewInternalError(fmt.Errorf("error parsing shopper response: %s", err))
	}

	return shopper, nil
}

func (g *httpGateway) fetchCart(c context.Context, method string, url string, body []byte) (*cartapi.CartSnapshot, error) {
	status, respPayload, err := g.sender.Send(c, method, url, body)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling cart backend %s: %s", url, err))
	}
	if status == http.StatusNotFound {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("cart not found: %s", url))
	}
	if status != http.StatusOK {
		return nil, myerrors.NewErrorWithStatus(fmt.Errorf("error calling cart backend %s: status %d", url, status), status)
	}

	cart := cartapi.CartSnapshot{}
	err = json.Unmarshal(respPayload, &cart)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing cart response %s: %s", url, err))
	}

	return &cart, nil
}
