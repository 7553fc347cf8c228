package contracttests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/mystore"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/cartsync"
)

// FakeCartAPI is an in-memory stand-in for the commerce backend. It
// implements cartsync.Gateway directly and also serves the backend's HTTP
// surface, so the same contract can run in-process and over the wire.
type FakeCartAPI struct {
	store   *mystore.InMemoryStore[cartapi.CartSnapshot]
	shopper cartapi.Shopper
}

func NewFakeCartAPI() *FakeCartAPI {
	store, _, _ := mystore.NewInMemoryStore[cartapi.CartSnapshot](context.Background())
	return &FakeCartAPI{
		store: store,
		shopper: cartapi.Shopper{
			UID:           "shopper-1",
			EmailAddress:  "marc@home.nl",
			HasPaidBefore: true,
		},
	}
}

func (a *FakeCartAPI) Seed(c context.Context, cart cartapi.CartSnapshot) error {
	return a.store.Put(c, cart.ID, cart)
}

func (a *FakeCartAPI) GetCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error) {
	cart, exists, err := a.store.Get(c, cartUID)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	if !exists {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("cart %s does not exist", cartUID))
	}
	return &cart, nil
}

func (a *FakeCartAPI) ApplyAddresses(c context.Context, cartUID string, billing cartapi.Address, shipping cartapi.Address) (*cartapi.CartSnapshot, error) {
	cart, err := a.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	cart.BillingAddress = billing
	cart.ShippingAddress = shipping

	return a.save(c, cart)
}

func (a *FakeCartAPI) ApplySource(c context.Context, cartUID string, sourceUID string) (*cartapi.CartSnapshot, error) {
	if sourceUID == "" {
		return nil, myerrors.NewInvalidInputErrorf("missing sourceId for cart %s", cartUID)
	}

	cart, err := a.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	cart.PaymentSession = &cartapi.PaymentSession{
		ID:     sourceUID,
		Status: "applied",
	}

	return a.save(c, cart)
}

func (a *FakeCartAPI) ApplyShippingOption(c context.Context, cartUID string, optionUID string) (*cartapi.CartSnapshot, error) {
	cart, err := a.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	// The real backend rejects option ids it never offered on this cart.
	option, found := findShippingOption(cart.ShippingOptions, optionUID)
	if !found {
		return nil, myerrors.NewInvalidInputErrorf("shipping option %s not offered on cart %s", optionUID, cartUID)
	}

	cart.Pricing.ShippingAndHandling = option.Cost
	cart.Pricing.OrderTotal = cartapi.Amount{
		Currency: cart.Pricing.Subtotal.Currency,
		Value:    cart.Pricing.Subtotal.Value + cart.Pricing.Tax.Value + option.Cost.Value,
	}

	return a.save(c, cart)
}

func (a *FakeCartAPI) GetShopper(c context.Context) (cartapi.Shopper, error) {
	return a.shopper, nil
}

func (a *FakeCartAPI) save(c context.Context, cart *cartapi.CartSnapshot) (*cartapi.CartSnapshot, error) {
	err := a.store.Put(c, cart.ID, *cart)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return cart, nil
}

func findShippingOption(options []cartapi.ShippingOption, optionUID string) (cartapi.ShippingOption, bool) {
	for _, option := range options {
		if option.ID == optionUID {
			return option, true
		}
	}
	return cartapi.ShippingOption{}, false
}

// RegisterEndpoints exposes the fake over the commerce backend's HTTP routes
// so the real http gateway can be contract-tested against it.
func (a *FakeCartAPI) RegisterEndpoints(router *mux.Router) {
	router.HandleFunc("/carts/{cartUID}", a.serveCart(func(c context.Context, r *http.Request, cartUID string) (*cartapi.CartSnapshot, error) {
		return a.GetCart(c, cartUID)
	})).Methods("GET")

	router.HandleFunc("/carts/{cartUID}/addresses", a.serveCart(func(c context.Context, r *http.Request, cartUID string) (*cartapi.CartSnapshot, error) {
		body := struct {
			Billing  cartapi.Address `json:"billingAddress"`
			Shipping cartapi.Address `json:"shippingAddress"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return nil, myerrors.NewInvalidInputError(err)
		}
		return a.ApplyAddresses(c, cartUID, body.Billing, body.Shipping)
	})).Methods("POST")

	router.HandleFunc("/carts/{cartUID}/paymentSource", a.serveCart(func(c context.Context, r *http.Request, cartUID string) (*cartapi.CartSnapshot, error) {
		body := struct {
			SourceID string `json:"sourceId"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return nil, myerrors.NewInvalidInputError(err)
		}
		return a.ApplySource(c, cartUID, body.SourceID)
	})).Methods("POST")

	router.HandleFunc("/carts/{cartUID}/shippingOption", a.serveCart(func(c context.Context, r *http.Request, cartUID string) (*cartapi.CartSnapshot, error) {
		body := struct {
			OptionID string `json:"shippingOptionId"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return nil, myerrors.NewInvalidInputError(err)
		}
		return a.ApplyShippingOption(c, cartUID, body.OptionID)
	})).Methods("POST")

	router.HandleFunc("/shoppers/current", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, a.shopper)
	}).Methods("GET")
}

func (a *FakeCartAPI) serveCart(handle func(c context.Context, r *http.Request, cartUID string) (*cartapi.CartSnapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := handle(r.Context(), r, mux.Vars(r)["cartUID"])
		if err != nil {
			writeJSON(w, myerrors.GetHTTPStatus(err), map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, cart)
	}
}

func writeJSON(w http.ResponseWriter, status int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

var _ cartsync.Gateway = &FakeCartAPI{}
