package tokenauth

import (
	"context"
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
	"github.com/commercekit/paymentcore/lib/myvault"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(providers *Providers, sessions mystore.Store[SessionSetup], vault myvault.VaultReadWriter,
	exchanger Exchanger, publisher mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("tokenauth")

	return &webService{
		logger:  logger,
		service: newService(providers, sessions, vault, exchanger, publisher, nower, uuider, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/tokenauth/start/{providerName}", s.startPage()).Methods("POST")
	router.HandleFunc("/tokenauth/done", s.donePage()).Methods("GET")
	// cron hits refresh with a GET, screens with a POST
	router.HandleFunc("/tokenauth/refresh/{providerName}", s.refreshTokenPage()).Methods("GET", "POST")
	router.HandleFunc("/tokenauth/cancel/{providerName}", s.cancelTokenPage()).Methods("POST")
	router.HandleFunc("/tokenauth/status/{providerName}", s.statusPage()).Methods("GET")

	return s.service.CreateTopics(c)
}

func (s *webService) startPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		providerName := mux.Vars(r)["providerName"]
		scopes := r.URL.Query().Get("scopes")
		returnURL := r.URL.Query().Get("returnUrl")

		authURL, err := s.service.start(c, providerName, scopes, returnURL, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, authURL, http.StatusSeeOther)
	}
}

func (s *webService) donePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")
		if sessionUID == "" || code == "" {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("missing state or code")))
			return
		}

		returnURL, err := s.service.done(c, sessionUID, code, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, returnURL, http.StatusSeeOther)
	}
}

func (s *webService) refreshTokenPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		providerName := mux.Vars(r)["providerName"]

		err := s.service.refreshToken(c, providerName)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Refreshed token for provider %s", providerName),
		})
	}
}

func (s *webService) cancelTokenPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		providerName := mux.Vars(r)["providerName"]

		err := s.service.cancelToken(c, providerName)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Cancelled token for provider %s", providerName),
		})
	}
}

func (s *webService) statusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		providerName := mux.Vars(r)["providerName"]

		status, err := s.service.getStatus(c, providerName)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, status)
	}
}
