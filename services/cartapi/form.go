package cartapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/commercekit/paymentcore/lib/myerrors"
)

// StartPayment carries the form fields the surrounding application posts
// when a shopper picks a payment method.
type StartPayment struct {
	CartUID   string     `form:"cartUid"`
	ReturnURL string     `form:"returnUrl"`
	CancelURL string     `form:"cancelUrl"`
	Country   string     `form:"country"`
	Currency  string     `form:"currency"`
	Supplier  MSTSForm   `form:"msts"`
	Wallet    WalletForm `form:"wallet"`
}

// MSTSForm holds the two free-text fields the MSTS method reads at submit time.
type MSTSForm struct {
	PONumber string `form:"poNumber"`
	Notes    string `form:"notes"`
}

type WalletForm struct {
	RequestShipping bool `form:"requestShipping"`
}

func NewFromRequest(r *http.Request) (StartPayment, error) {
	err := r.ParseForm()
	if err != nil {
		return StartPayment{}, myerrors.NewInvalidInputError(err)
	}
	return NewFromValues(r.Form)
}

func NewFromValues(values url.Values) (StartPayment, error) {
	start := StartPayment{}
	err := formcodec.NewDecoder().Decode(&start, values)
	if err != nil {
		return start, fmt.Errorf("error decoding form: %s", err)
	}

	return start, nil
}

func (sp StartPayment) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(sp)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}
