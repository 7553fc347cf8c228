package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type paymentContext struct {
	UID    string
	Method string
	Status string
}

var (
	instance = paymentContext{UID: "123", Method: "creditCard", Status: "created"}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[paymentContext](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, instance.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Get put", func(t *testing.T) {
		err = ps.Put(c, instance.UID, instance)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, instance.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, paymentContext{UID: "123", Method: "creditCard", Status: "created"}, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, all, []paymentContext{instance})
	})

	t.Run("Put and get within transaction", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			other := paymentContext{UID: "456", Method: "payPal", Status: "created"}
			err := ps.Put(c, other.UID, other)
			assert.NoError(t, err)

			got, found, err := ps.Get(c, other.UID)
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, other, got)

			return nil
		})
		assert.NoError(t, err)
	})
}
