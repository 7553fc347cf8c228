package myvault

import (
	"context"

	"github.com/commercekit/paymentcore/lib/mystore"
)

func New(c context.Context) (VaultReadWriter, func(), error) {
	return mystore.New[Token](c)
}
