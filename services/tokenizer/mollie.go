package tokenizer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VictorAvelar/mollie-api-go/v3/mollie"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/myvault"
	"github.com/commercekit/paymentcore/services/paymentrequest"
)

type mollieTokenizer struct {
	payer  MolliePayer
	apiKey string
	vault  myvault.VaultReader
	logger mylog.Logger
}

// NewMollie serves the redirect family: every source starts pending and the
// shopper authorizes on the processor's pages.
func NewMollie(payer MolliePayer, apiKey string, vault myvault.VaultReader) Tokenizer {
	return &mollieTokenizer{
		payer:  payer,
		apiKey: apiKey,
		vault:  vault,
		logger: mylog.New("mollietokenizer"),
	}
}

func (t *mollieTokenizer) CreateSource(c context.Context, payload paymentrequest.Payload) (Response, error) {
	setupAuthentication(c, t.vault, "mollie", t.apiKey, t.logger, t.payer)

	request := mollie.Payment{
		Description: fmt.Sprintf("Payment via %s", payload.Type),
		Amount: &mollie.Amount{
			Currency: payload.Currency,
			Value:    amountValue(payload.Amount),
		},
	}
	if returnURL, ok := payload.Details["returnUrl"].(string); ok {
		request.RedirectURL = returnURL
	}

	payment, err := t.payer.CreatePayment(c, request)
	if err != nil {
		t.logger.Log(c, payload.Type, mylog.SeverityWarn, "Tokenization failed for %s: %s", payload.Type, err)
		return Response{Error: &TokenError{Message: err.Error()}}, nil
	}

	converted := fromMolliePayment(payment)
	converted.MethodName = payload.Type
	converted.AmountInCents = payload.Amount
	converted.Currency = payload.Currency

	return Response{Source: &converted}, nil
}

func (t *mollieTokenizer) GetSource(c context.Context, sourceUID string) (Response, error) {
	setupAuthentication(c, t.vault, "mollie", t.apiKey, t.logger, t.payer)

	payment, err := t.payer.GetPaymentOnID(c, sourceUID)
	if err != nil {
		return Response{Error: &TokenError{Message: err.Error()}}, nil
	}

	converted := fromMolliePayment(payment)
	if payment.Amount != nil {
		value, _ := strconv.ParseFloat(payment.Amount.Value, 64)
		converted.AmountInCents = int64(value * 100)
		converted.Currency = payment.Amount.Currency
	}

	return Response{Source: &converted}, nil
}

func fromMolliePayment(payment mollie.Payment) Source {
	src := Source{
		UID:   payment.ID,
		Flow:  FlowRedirect,
		State: fromMollieStatus(payment.Status),
	}
	if payment.Links.Checkout != nil {
		src.RedirectURL = payment.Links.Checkout.Href
	}

	return src
}

func fromMollieStatus(status string) State {
	switch status {
	case "open", "pending":
		return StatePendingRedirect
	case "authorized":
		return StateChargeable
	case "paid":
		return StateConsumed
	default:
		return StateFailed
	}
}

// amountValue renders minor units the way the mollie api wants them: a
// decimal string with exactly two digits.
func amountValue(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
