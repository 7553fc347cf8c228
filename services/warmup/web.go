package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commercekit/paymentcore/lib/mycontext"
	"github.com/commercekit/paymentcore/lib/myhttp"
	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/myvault"
)

type webService struct {
	logger        mylog.Logger
	vault         myvault.VaultReader
	providerNames []string
}

// NewService warms the vault reads the tokenizers depend on, so the first
// real payment does not pay the cold-start penalty.
func NewService(vault myvault.VaultReader, providerNames []string) *webService {
	return &webService{
		logger:        mylog.New("warmup"),
		vault:         vault,
		providerNames: providerNames,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		for _, name := range s.providerNames {
			_, _, err := s.vault.Get(c, myvault.CurrentToken+"_"+name)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
