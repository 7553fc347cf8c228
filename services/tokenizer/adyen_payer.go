package tokenizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/adyen/adyen-go-api-library/v3/src/adyen"
	"github.com/adyen/adyen-go-api-library/v3/src/checkout"
	"github.com/adyen/adyen-go-api-library/v3/src/common"

	"github.com/commercekit/paymentcore/lib/myerrors"
)

//go:generate mockgen -source=adyen_payer.go -package tokenizer -destination adyen_payer_mock.go AdyenPayer
type AdyenPayer interface {
	UseAPIKey(key string)
	UseToken(accessToken string)
	Payments(ctx context.Context, req checkout.PaymentRequest) (checkout.PaymentResponse, error)
}

type adyenPayer struct {
	client *adyen.APIClient
}

func NewAdyenPayer(environment string, apiKey string) AdyenPayer {
	return &adyenPayer{
		client: adyen.NewClient(&common.Config{
			ApiKey:      apiKey,
			Environment: common.Environment(strings.ToUpper(environment)),
			Debug:       false,
		}),
	}
}

func (p *adyenPayer) UseAPIKey(apiKey string) {
	// clear header
	delete(p.client.GetConfig().DefaultHeader, "Authorization")
	// set api-key
	p.client.GetConfig().ApiKey = apiKey
}

func (p *adyenPayer) UseToken(accessToken string) {
	// clear api-key
	p.client.GetConfig().ApiKey = ""
	// set header
	p.client.GetConfig().DefaultHeader["Authorization"] = fmt.Sprintf("Bearer %s", accessToken)
}

func (p *adyenPayer) Payments(ctx context.Context, req checkout.PaymentRequest) (checkout.PaymentResponse, error) {
	resp, _, err := p.client.Checkout.Payments(&req, ctx)
	if err != nil {
		return checkout.PaymentResponse{}, myerrors.NewInvalidInputError(fmt.Errorf("error creating adyen payment: %s", err))
	}

	return resp, nil
}
