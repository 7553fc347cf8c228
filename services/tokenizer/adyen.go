package tokenizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/adyen/adyen-go-api-library/v3/src/checkout"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/lib/myvault"
	"github.com/commercekit/paymentcore/services/paymentrequest"
)

type adyenTokenizer struct {
	payer           AdyenPayer
	apiKey          string
	merchantAccount string
	vault           myvault.VaultReader
	uuider          myuuid.UUIDer
	logger          mylog.Logger

	// Adyen has no source-lookup endpoint keyed by our reference, so
	// created sources are remembered here to serve GetSource.
	mutex   sync.Mutex
	created map[string]Source
}

// NewAdyen serves card-style methods through the checkout payments endpoint.
func NewAdyen(payer AdyenPayer, apiKey string, merchantAccount string, vault myvault.VaultReader, uuider myuuid.UUIDer) Tokenizer {
	return &adyenTokenizer{
		payer:           payer,
		apiKey:          apiKey,
		merchantAccount: merchantAccount,
		vault:           vault,
		uuider:          uuider,
		logger:          mylog.New("adyentokenizer"),
		created:         map[string]Source{},
	}
}

func (t *adyenTokenizer) CreateSource(c context.Context, payload paymentrequest.Payload) (Response, error) {
	setupAuthentication(c, t.vault, "adyen", t.apiKey, t.logger, t.payer)

	reference := t.uuider.Create()
	req := checkout.PaymentRequest{
		MerchantAccount: t.merchantAccount,
		Reference:       reference,
		Amount: checkout.Amount{
			Currency: payload.Currency,
			Value:    payload.Amount,
		},
		PaymentMethod: map[string]interface{}{
			"type": payload.Type,
		},
	}
	if payload.Owner != nil {
		req.ShopperEmail = payload.Owner.Email
		req.CountryCode = payload.Owner.Address.Country
	}
	if returnURL, ok := payload.Details["returnUrl"].(string); ok {
		req.ReturnUrl = returnURL
	}

	resp, err := t.payer.Payments(c, req)
	if err != nil {
		t.logger.Log(c, payload.Type, mylog.SeverityWarn, "Tokenization failed for %s: %s", payload.Type, err)
		return Response{Error: &TokenError{Message: err.Error()}}, nil
	}

	converted, tokenErr := t.fromAdyenResponse(resp, reference, payload)
	if tokenErr != nil {
		return Response{Error: tokenErr}, nil
	}

	t.remember(converted)

	return Response{Source: &converted}, nil
}

func (t *adyenTokenizer) GetSource(c context.Context, sourceUID string) (Response, error) {
	t.mutex.Lock()
	src, found := t.created[sourceUID]
	t.mutex.Unlock()
	if !found {
		return Response{Error: &TokenError{Message: fmt.Sprintf("unknown source %s", sourceUID)}}, nil
	}

	return Response{Source: &src}, nil
}

func (t *adyenTokenizer) remember(src Source) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.created[src.UID] = src
}

func (t *adyenTokenizer) fromAdyenResponse(resp checkout.PaymentResponse, reference string, payload paymentrequest.Payload) (Source, *TokenError) {
	uid := resp.PspReference
	if uid == "" {
		uid = reference
	}

	src := Source{
		UID:           uid,
		MethodName:    payload.Type,
		AmountInCents: payload.Amount,
		Currency:      payload.Currency,
	}

	switch resp.ResultCode {
	case "Authorised":
		src.Flow = FlowStandard
		src.State = StateChargeable
	case "RedirectShopper":
		src.Flow = FlowRedirect
		src.State = StatePendingRedirect
		if resp.Action.Url != "" {
			src.RedirectURL = resp.Action.Url
		}
	case "Received", "Pending":
		src.Flow = FlowReceiver
		src.State = StatePendingFunds
	default:
		message := resp.RefusalReason
		if message == "" {
			message = fmt.Sprintf("payment not accepted: %s", resp.ResultCode)
		}
		return Source{}, &TokenError{Code: string(resp.ResultCode), Message: message}
	}

	return src, nil
}
