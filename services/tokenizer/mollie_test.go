package tokenizer

import (
	"context"
	"testing"

	"github.com/VictorAvelar/mollie-api-go/v3/mollie"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/lib/myvault"
)

func TestMollieCreateSource(t *testing.T) {
	c, ctrl, payer, vault := setupMollie(t)
	defer ctrl.Finish()

	// given
	vault.EXPECT().Get(gomock.Any(), "currentToken_mollie").Return(myvault.Token{}, false, nil)
	payer.EXPECT().UseAPIKey("test_123")
	payer.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, request mollie.Payment) (mollie.Payment, error) {
			assert.Equal(t, "EUR", request.Amount.Currency)
			assert.Equal(t, "123.00", request.Amount.Value)
			assert.Equal(t, "https://shop.example/return", request.RedirectURL)
			request.ID = "tr_1"
			request.Status = "open"
			request.Links.Checkout = &mollie.URL{Href: "https://mollie.example/pay/tr_1"}
			return request, nil
		})
	tok := NewMollie(payer, "test_123", vault)

	// when
	resp, err := tok.CreateSource(c, examplePayload())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "tr_1", resp.Source.UID)
	assert.Equal(t, FlowRedirect, resp.Source.Flow)
	assert.Equal(t, StatePendingRedirect, resp.Source.State)
	assert.Equal(t, "https://mollie.example/pay/tr_1", resp.Source.RedirectURL)
	assert.Equal(t, int64(12300), resp.Source.AmountInCents)
}

func TestMollieGetSourcePaid(t *testing.T) {
	c, ctrl, payer, vault := setupMollie(t)
	defer ctrl.Finish()

	// given
	vault.EXPECT().Get(gomock.Any(), "currentToken_mollie").Return(myvault.Token{}, false, nil)
	payer.EXPECT().UseAPIKey("test_123")
	payer.EXPECT().GetPaymentOnID(gomock.Any(), "tr_1").Return(mollie.Payment{
		ID:     "tr_1",
		Status: "paid",
		Amount: &mollie.Amount{Currency: "EUR", Value: "123.00"},
	}, nil)
	tok := NewMollie(payer, "test_123", vault)

	// when
	resp, err := tok.GetSource(c, "tr_1")

	// then
	assert.NoError(t, err)
	assert.Equal(t, StateConsumed, resp.Source.State)
	assert.Equal(t, int64(12300), resp.Source.AmountInCents)
}

func TestMollieFailureBecomesErrorPayload(t *testing.T) {
	c, ctrl, payer, vault := setupMollie(t)
	defer ctrl.Finish()

	// given
	vault.EXPECT().Get(gomock.Any(), "currentToken_mollie").Return(myvault.Token{}, false, nil)
	payer.EXPECT().UseAPIKey("test_123")
	payer.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(mollie.Payment{}, assert.AnError)
	tok := NewMollie(payer, "test_123", vault)

	// when
	resp, err := tok.CreateSource(c, examplePayload())

	// then
	assert.NoError(t, err)
	assert.Nil(t, resp.Source)
	assert.NotNil(t, resp.Error)
}

func TestAmountValue(t *testing.T) {
	assert.Equal(t, "123.00", amountValue(12300))
	assert.Equal(t, "0.01", amountValue(1))
	assert.Equal(t, "10.50", amountValue(1050))
}

func setupMollie(t *testing.T) (context.Context, *gomock.Controller, *MockMolliePayer, *myvault.MockVaultReader) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	payer := NewMockMolliePayer(ctrl)
	vault := myvault.NewMockVaultReader(ctrl)

	return c, ctrl, payer, vault
}
