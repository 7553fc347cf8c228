package tokenizer

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/source"

	"github.com/commercekit/paymentcore/lib/myerrors"
)

//go:generate mockgen -source=stripe_payer.go -package tokenizer -destination stripe_payer_mock.go StripePayer
type StripePayer interface {
	UseAPIKey(key string)
	UseToken(accessToken string)
	CreateSource(ctx context.Context, params stripe.SourceParams) (stripe.Source, error)
	GetSource(ctx context.Context, sourceUID string) (stripe.Source, error)
}

type stripePayer struct{}

func NewStripePayer() StripePayer {
	return &stripePayer{}
}

func (p *stripePayer) UseAPIKey(apiKey string) {
	stripe.Key = apiKey
}

func (p *stripePayer) UseToken(accessToken string) {
	stripe.Key = accessToken
}

func (p *stripePayer) CreateSource(ctx context.Context, params stripe.SourceParams) (stripe.Source, error) {
	src, err := source.New(&params)
	if err != nil {
		return stripe.Source{}, myerrors.NewInvalidInputError(fmt.Errorf("error creating stripe source: %s", err))
	}

	return *src, nil
}

func (p *stripePayer) GetSource(ctx context.Context, sourceUID string) (stripe.Source, error) {
	src, err := source.Get(sourceUID, nil)
	if err != nil {
		return stripe.Source{}, myerrors.NewNotFoundError(fmt.Errorf("error fetching stripe source %s: %s", sourceUID, err))
	}

	return *src, nil
}
