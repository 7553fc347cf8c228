package cartsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentevents"
)

func TestGetCartCachesSnapshot(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given: the backend is hit once
	gateway.EXPECT().GetCart(gomock.Any(), "cart-123").Return(exampleCart(12300), nil)
	service := NewService(gateway, publisher)

	// when
	first, err := service.GetCart(c, "cart-123")
	assert.NoError(t, err)
	second, err := service.GetCart(c, "cart-123")
	assert.NoError(t, err)

	// then
	assert.Same(t, first, second)
}

func TestRefreshCartBypassesCache(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given
	gateway.EXPECT().GetCart(gomock.Any(), "cart-123").Return(exampleCart(12300), nil)
	gateway.EXPECT().GetCart(gomock.Any(), "cart-123").Return(exampleCart(15000), nil)
	service := NewService(gateway, publisher)

	// when
	_, err := service.GetCart(c, "cart-123")
	assert.NoError(t, err)
	refreshed, err := service.RefreshCart(c, "cart-123")
	assert.NoError(t, err)

	// then: the refreshed snapshot replaced the cached one
	assert.Equal(t, int64(15000), refreshed.OrderTotal().Value)
	cached, err := service.GetCart(c, "cart-123")
	assert.NoError(t, err)
	assert.Same(t, refreshed, cached)
}

func TestApplySourcePublishesCartUpdated(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given
	gateway.EXPECT().ApplySource(gomock.Any(), "cart-123", "src_1").Return(exampleCart(12300), nil)
	publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, paymentevents.CartUpdated{
		CartUID:       "cart-123",
		AmountInCents: 12300,
		Currency:      "EUR",
		Mutation:      "source",
	}).Return(nil)
	service := NewService(gateway, publisher)

	// when
	cart, err := service.ApplySource(c, "cart-123", "src_1")

	// then
	assert.NoError(t, err)
	assert.Equal(t, int64(12300), cart.OrderTotal().Value)
}

func TestCacheUpdatedBeforePublish(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given: an already cached stale snapshot
	gateway.EXPECT().GetCart(gomock.Any(), "cart-123").Return(exampleCart(10000), nil)
	service := NewService(gateway, publisher)
	_, err := service.GetCart(c, "cart-123")
	assert.NoError(t, err)

	// a subscriber reading the cache during delivery must observe the
	// mutated snapshot already
	fresh := exampleCart(12300)
	gateway.EXPECT().ApplyShippingOption(gomock.Any(), "cart-123", "express").Return(fresh, nil)
	publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).DoAndReturn(
		func(c context.Context, topic string, event any) error {
			observed, err := service.GetCart(c, "cart-123")
			assert.NoError(t, err)
			assert.Same(t, fresh, observed)
			return nil
		})

	// when
	_, err = service.ApplyShippingOption(c, "cart-123", "express")

	// then
	assert.NoError(t, err)
}

func TestApplyAddressesFailurePropagates(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given: no publish on failure
	gateway.EXPECT().ApplyAddresses(gomock.Any(), "cart-123", gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	service := NewService(gateway, publisher)

	// when
	_, err := service.ApplyAddresses(c, "cart-123", cartapi.Address{}, cartapi.Address{})

	// then
	assert.Error(t, err)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	c, ctrl, gateway, publisher := setup(t)
	defer ctrl.Finish()

	// given
	gateway.EXPECT().ApplySource(gomock.Any(), "cart-123", "src_1").Return(exampleCart(12300), nil)
	publisher.EXPECT().Publish(gomock.Any(), paymentevents.TopicName, gomock.Any()).Return(assert.AnError)
	service := NewService(gateway, publisher)

	// when
	cart, err := service.ApplySource(c, "cart-123", "src_1")

	// then
	assert.NoError(t, err)
	assert.NotNil(t, cart)
}

func setup(t *testing.T) (context.Context, *gomock.Controller, *MockGateway, *mypublisher.MockPublisher) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	return c, ctrl, gateway, publisher
}

func exampleCart(totalInCents int64) *cartapi.CartSnapshot {
	return &cartapi.CartSnapshot{
		ID: "cart-123",
		Pricing: cartapi.Pricing{
			OrderTotal: cartapi.Amount{Currency: "EUR", Value: totalInCents},
		},
	}
}
