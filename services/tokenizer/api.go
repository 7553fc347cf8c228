package tokenizer

import (
	"context"

	"github.com/commercekit/paymentcore/services/paymentrequest"
)

// Tokenizer converts a request payload into a source at one of the payment
// processors. Its only contract with the rest of the system is the payload
// shape in and the {error, source} response out.
//
//go:generate mockgen -source=api.go -package tokenizer -destination tokenizer_mock.go Tokenizer
type Tokenizer interface {
	CreateSource(c context.Context, payload paymentrequest.Payload) (Response, error)
	GetSource(c context.Context, sourceUID string) (Response, error)
}

// Registry maps method names onto the adapter serving them.
type Registry struct {
	byMethod map[string]Tokenizer
	fallback Tokenizer
}

func NewRegistry(fallback Tokenizer) *Registry {
	return &Registry{
		byMethod: map[string]Tokenizer{},
		fallback: fallback,
	}
}

func (r *Registry) Register(methodName string, t Tokenizer) {
	r.byMethod[methodName] = t
}

func (r *Registry) For(methodName string) Tokenizer {
	if t, found := r.byMethod[methodName]; found {
		return t
	}

	return r.fallback
}
