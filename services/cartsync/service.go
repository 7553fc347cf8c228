package cartsync

import (
	"context"
	"sync"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentevents"
)

// Service fronts the cart gateway with a local snapshot cache and publishes
// a CartUpdated event after every successful mutation. The cache is written
// before the event goes out, so a subscriber reading the cache during
// delivery observes the value the event describes.
type Service struct {
	gateway   Gateway
	publisher mypublisher.Publisher
	logger    mylog.Logger

	mutex sync.Mutex
	cache map[string]*cartapi.CartSnapshot
}

func NewService(gateway Gateway, publisher mypublisher.Publisher) *Service {
	return &Service{
		gateway:   gateway,
		publisher: publisher,
		logger:    mylog.New("cartsync"),
		cache:     map[string]*cartapi.CartSnapshot{},
	}
}

func (s *Service) CreateTopics(c context.Context) error {
	return s.publisher.CreateTopic(c, paymentevents.TopicName)
}

// GetCart returns the cached snapshot when present, fetching fresh otherwise.
func (s *Service) GetCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error) {
	s.mutex.Lock()
	cached, found := s.cache[cartUID]
	s.mutex.Unlock()
	if found {
		return cached, nil
	}

	return s.RefreshCart(c, cartUID)
}

// RefreshCart always fetches from the backend and replaces the cached copy.
func (s *Service) RefreshCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error) {
	cart, err := s.gateway.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	s.store(cartUID, cart)

	return cart, nil
}

func (s *Service) ApplyAddresses(c context.Context, cartUID string, billing cartapi.Address, shipping cartapi.Address) (*cartapi.CartSnapshot, error) {
	cart, err := s.gateway.ApplyAddresses(c, cartUID, billing, shipping)
	if err != nil {
		return nil, err
	}

	s.afterMutation(c, cartUID, cart, "addresses")

	return cart, nil
}

func (s *Service) ApplySource(c context.Context, cartUID string, sourceUID string) (*cartapi.CartSnapshot, error) {
	cart, err := s.gateway.ApplySource(c, cartUID, sourceUID)
	if err != nil {
		return nil, err
	}

	s.afterMutation(c, cartUID, cart, "source")

	return cart, nil
}

func (s *Service) ApplyShippingOption(c context.Context, cartUID string, optionUID string) (*cartapi.CartSnapshot, error) {
	cart, err := s.gateway.ApplyShippingOption(c, cartUID, optionUID)
	if err != nil {
		return nil, err
	}

	s.afterMutation(c, cartUID, cart, "shippingOption")

	return cart, nil
}

func (s *Service) GetShopper(c context.Context) (cartapi.Shopper, error) {
	return s.gateway.GetShopper(c)
}

func (s *Service) store(cartUID string, cart *cartapi.CartSnapshot) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cache[cartUID] = cart
}

// afterMutation caches first, publishes second.
func (s *Service) afterMutation(c context.Context, cartUID string, cart *cartapi.CartSnapshot, mutation string) {
	s.store(cartUID, cart)

	total := cart.OrderTotal()
	err := s.publisher.Publish(c, paymentevents.TopicName, paymentevents.CartUpdated{
		CartUID:       cartUID,
		AmountInCents: total.Value,
		Currency:      total.Currency,
		Mutation:      mutation,
	})
	if err != nil {
		// A missed notification must not fail the mutation itself.
		s.logger.Log(c, cartUID, mylog.SeverityWarn, "Error publishing cart-updated event for cart %s: %s", cartUID, err)
	}
}
