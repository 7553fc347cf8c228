package paymentlifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commercekit/paymentcore/lib/mycontext"
	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myhttp"
	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/lib/mystore"
	"github.com/commercekit/paymentcore/lib/mytime"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
	"github.com/commercekit/paymentcore/services/tokenizer"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, catalog *paymentcatalog.Catalog, evaluator *paymentcatalog.Evaluator, detector paymentcatalog.Detector,
	carts CartAccess, tokenizers *tokenizer.Registry, store mystore.Store[PaymentContext], publisher mypublisher.Publisher,
	nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("paymentlifecycle")

	return &webService{
		logger:  logger,
		service: newService(cfg, catalog, evaluator, detector, carts, tokenizers, store, publisher, nower, uuider, logger),
	}
}

func (s *webService) RegisterCompletionHook(methodName string, hook CompletionHook) {
	s.service.RegisterCompletionHook(methodName, hook)
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/payment/methods/{cartUID}", s.eligibleMethodsPage()).Methods("GET")

	router.HandleFunc("/payment/{methodName}/{cartUID}", s.startPaymentPage()).Methods("POST")
	router.HandleFunc("/payment/{cartUID}/status/{status}", s.paymentReturnPage()).Methods("GET")
	router.HandleFunc("/payment/{cartUID}", s.paymentStatusPage()).Methods("GET")

	router.HandleFunc("/payment/{cartUID}/wallet/shippingaddress", s.walletShippingAddressChanged()).Methods("POST")
	router.HandleFunc("/payment/{cartUID}/wallet/shippingoption", s.walletShippingOptionChanged()).Methods("POST")

	return nil
}

type methodsResponse struct {
	Methods []string `json:"methods"`
}

type startPaymentResponse struct {
	CartUID     string `json:"cartUid"`
	SourceUID   string `json:"sourceUid"`
	Flow        string `json:"flow"`
	State       string `json:"state"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

type paymentStatusResponse struct {
	CartUID     string `json:"cartUid"`
	MethodName  string `json:"methodName"`
	State       string `json:"state"`
	SourceState string `json:"sourceState,omitempty"`
	ReadySubmit bool   `json:"readySubmit"`
	LastError   string `json:"lastError,omitempty"`
}

type walletAddressRequest struct {
	ShippingAddress cartapi.Address `json:"shippingAddress"`
}

type walletOptionRequest struct {
	ShippingOptionID string `json:"shippingOptionId"`
}

// eligibleMethodsPage lists the payment methods that may be offered for
// this cart, smallest first is the catalog's enabled order.
func (s *webService) eligibleMethodsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		defs, err := s.service.eligibleMethods(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp := methodsResponse{Methods: []string{}}
		for _, def := range defs {
			resp.Methods = append(resp.Methods, def.Name)
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

// startPaymentPage drives the synchronous part of a payment: build the
// request payload, tokenize and apply. Redirect methods get a 303 to the
// external page, the rest a JSON summary of the applied source.
func (s *webService) startPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		methodName := mux.Vars(r)["methodName"]
		cartUID := mux.Vars(r)["cartUID"]

		form, err := cartapi.NewFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing form: %s", err)))
			return
		}

		source, err := s.service.startPayment(c, cartUID, methodName, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if source.State == tokenizer.StatePendingRedirect && source.RedirectURL != "" {
			http.Redirect(w, r, source.RedirectURL, http.StatusSeeOther)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, startPaymentResponse{
			CartUID:     cartUID,
			SourceUID:   source.UID,
			Flow:        string(source.Flow),
			State:       string(source.State),
			RedirectURL: source.RedirectURL,
		})
	}
}

// paymentReturnPage is where the external redirect comes back.
func (s *webService) paymentReturnPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]
		status := mux.Vars(r)["status"]

		redirectURL, err := s.service.finalizeReturn(c, cartUID, status)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}

func (s *webService) paymentStatusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		paymentContext, err := s.service.fetch(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		ready, err := s.service.isReadySubmit(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, paymentStatusResponse{
			CartUID:     cartUID,
			MethodName:  paymentContext.MethodName,
			State:       string(paymentContext.State),
			SourceState: paymentContext.SourceState,
			ReadySubmit: ready,
			LastError:   paymentContext.LastError,
		})
	}
}

// walletShippingAddressChanged answers a wallet sheet callback. The sheet
// always gets a 200: failures travel inside the update object.
func (s *webService) walletShippingAddressChanged() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		req := walletAddressRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		update := s.service.shippingAddressChanged(c, cartUID, req.ShippingAddress)

		errorWriter.Write(c, w, http.StatusOK, update)
	}
}

func (s *webService) walletShippingOptionChanged() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		req := walletOptionRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		update := s.service.shippingOptionChanged(c, cartUID, req.ShippingOptionID)

		errorWriter.Write(c, w, http.StatusOK, update)
	}
}
