package tokenizer

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/myvault"
	"github.com/commercekit/paymentcore/services/paymentrequest"
)

type stripeTokenizer struct {
	payer  StripePayer
	apiKey string
	vault  myvault.VaultReader
	logger mylog.Logger
}

// NewStripe is the default adapter: the Sources API natively speaks the
// flow/state vocabulary of this system.
func NewStripe(payer StripePayer, apiKey string, vault myvault.VaultReader) Tokenizer {
	return &stripeTokenizer{
		payer:  payer,
		apiKey: apiKey,
		vault:  vault,
		logger: mylog.New("stripetokenizer"),
	}
}

func (t *stripeTokenizer) CreateSource(c context.Context, payload paymentrequest.Payload) (Response, error) {
	setupAuthentication(c, t.vault, "stripe", t.apiKey, t.logger, t.payer)

	params := stripe.SourceParams{
		Type:     stripe.String(payload.Type),
		Currency: stripe.String(strings.ToLower(payload.Currency)),
	}
	if payload.SessionID == "" {
		params.Amount = stripe.Int64(payload.Amount)
	}
	if payload.Owner != nil {
		params.Owner = ownerParams(*payload.Owner)
	}
	if returnURL, ok := payload.Details["returnUrl"].(string); ok && returnURL != "" {
		params.Redirect = &stripe.SourceRedirectParams{
			ReturnURL: stripe.String(returnURL),
		}
	}

	src, err := t.payer.CreateSource(c, params)
	if err != nil {
		t.logger.Log(c, payload.Type, mylog.SeverityWarn, "Tokenization failed for %s: %s", payload.Type, err)
		return Response{Error: &TokenError{Message: err.Error()}}, nil
	}

	converted := fromStripeSource(src)
	converted.MethodName = payload.Type

	return Response{Source: &converted}, nil
}

func (t *stripeTokenizer) GetSource(c context.Context, sourceUID string) (Response, error) {
	setupAuthentication(c, t.vault, "stripe", t.apiKey, t.logger, t.payer)

	src, err := t.payer.GetSource(c, sourceUID)
	if err != nil {
		return Response{Error: &TokenError{Message: err.Error()}}, nil
	}

	converted := fromStripeSource(src)

	return Response{Source: &converted}, nil
}

func ownerParams(owner paymentrequest.Owner) *stripe.SourceOwnerParams {
	name := strings.TrimSpace(owner.FirstName + " " + owner.LastName)

	params := &stripe.SourceOwnerParams{
		Address: &stripe.AddressParams{
			City:       stripe.String(owner.Address.City),
			Country:    stripe.String(owner.Address.Country),
			Line1:      stripe.String(owner.Address.Line1),
			Line2:      stripe.String(owner.Address.Line2),
			PostalCode: stripe.String(owner.Address.PostalCode),
			State:      stripe.String(owner.Address.State),
		},
	}
	if owner.Email != "" {
		params.Email = stripe.String(owner.Email)
	}
	if name != "" {
		params.Name = stripe.String(name)
	}
	if owner.PhoneNumber != "" {
		params.Phone = stripe.String(owner.PhoneNumber)
	}

	return params
}

func fromStripeSource(src stripe.Source) Source {
	converted := Source{
		UID:           src.ID,
		Flow:          fromStripeFlow(src.Flow),
		State:         fromStripeStatus(src.Status, src.Flow),
		AmountInCents: src.Amount,
		Currency:      strings.ToUpper(string(src.Currency)),
	}
	if src.Redirect != nil {
		converted.RedirectURL = src.Redirect.URL
	}
	if src.Owner != nil {
		converted.Billing = fromStripeOwner(*src.Owner)
	}

	return converted
}

func fromStripeOwner(owner stripe.SourceOwner) *SourceAddress {
	firstName, lastName, _ := strings.Cut(owner.Name, " ")

	address := &SourceAddress{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       owner.Email,
		PhoneNumber: owner.Phone,
	}
	if owner.Address != nil {
		address.Line1 = owner.Address.Line1
		address.Line2 = owner.Address.Line2
		address.City = owner.Address.City
		address.State = owner.Address.State
		address.PostalCode = owner.Address.PostalCode
		address.Country = owner.Address.Country
	}

	return address
}

func fromStripeFlow(flow stripe.SourceFlow) Flow {
	switch flow {
	case stripe.SourceFlowReceiver:
		return FlowReceiver
	case stripe.SourceFlowRedirect:
		return FlowRedirect
	default:
		return FlowStandard
	}
}

func fromStripeStatus(status stripe.SourceStatus, flow stripe.SourceFlow) State {
	switch status {
	case stripe.SourceStatusChargeable:
		return StateChargeable
	case stripe.SourceStatusConsumed:
		return StateConsumed
	case stripe.SourceStatusPending:
		if flow == stripe.SourceFlowRedirect {
			return StatePendingRedirect
		}
		return StatePendingFunds
	default:
		return StateFailed
	}
}
