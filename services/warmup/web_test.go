package warmup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/lib/myvault"
)

func TestWarmup(t *testing.T) {

	t.Run("Warms every provider token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		vault := myvault.NewMockVaultReader(ctrl)
		vault.EXPECT().Get(gomock.Any(), "currentToken_stripe").Return(myvault.Token{}, false, nil)
		vault.EXPECT().Get(gomock.Any(), "currentToken_mollie").Return(myvault.Token{}, false, nil)

		router := mux.NewRouter()
		NewService(vault, []string{"stripe", "mollie"}).RegisterEndpoints(context.TODO(), router)

		request := httptest.NewRequest(http.MethodGet, "/_ah/warmup", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)
	})

	t.Run("Vault trouble surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		vault := myvault.NewMockVaultReader(ctrl)
		vault.EXPECT().Get(gomock.Any(), "currentToken_stripe").Return(myvault.Token{}, false, fmt.Errorf("vault down"))

		router := mux.NewRouter()
		NewService(vault, []string{"stripe"}).RegisterEndpoints(context.TODO(), router)

		request := httptest.NewRequest(http.MethodGet, "/_ah/warmup", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 500, response.Code)
	})
}
