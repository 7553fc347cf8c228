package paymentrequest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// SupplierFieldReader exposes the two free-text fields the surrounding
// application collects for MSTS at submit time.
type SupplierFieldReader interface {
	PONumber() string
	Notes() string
}

type MSTSConfig struct {
	// EnrollURL is the base of the "enroll now" link.
	EnrollURL string

	// MarketingNames maps "{country}-{currency}" keys to program names,
	// configured as a semicolon-delimited string:
	// "US-USD=Acme US;DE-EUR=Acme DE".
	MarketingNames string
}

// NewMSTS builds the MSTS (invoice/credit-line) payload and owns the manual
// enrollment flow that runs independent of the tokenizer.
func NewMSTS(def paymentcatalog.PaymentMethodDefinition, cfg Config, mstsCfg MSTSConfig, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector, fields SupplierFieldReader, uuider myuuid.UUIDer) *MSTS {
	return &MSTS{
		base:   newBase(def, cfg, urls, shoppers, detector),
		cfg:    mstsCfg,
		fields: fields,
		uuider: uuider,
	}
}

type MSTS struct {
	base
	cfg    MSTSConfig
	fields SupplierFieldReader
	uuider myuuid.UUIDer
}

func (m *MSTS) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	payload, err := m.createObject(c, cart)
	if err != nil {
		return Result{}, err
	}

	payload.Details["poNumber"] = m.fields.PONumber()
	payload.Details["notes"] = m.fields.Notes()
	payload.Details["clientReferenceId"] = m.uuider.Create()
	payload.Details = m.applyOverrides(payload.Details)

	return Result{Payload: payload, Supported: true}, nil
}

// EnrollmentLink composes the "enroll now" URL for the shopper's
// country/currency combination. Combinations without a configured marketing
// name have no enrollment program.
func (m *MSTS) EnrollmentLink(country string, currency string) (string, error) {
	key := fmt.Sprintf("%s-%s", country, currency)

	marketingName := ""
	for _, entry := range strings.Split(m.cfg.MarketingNames, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(entry), "=")
		if found && name == key {
			marketingName = value
			break
		}
	}
	if marketingName == "" {
		return "", myerrors.NewNotFoundError(fmt.Errorf("no enrollment program for %s", key))
	}

	link, err := url.Parse(m.cfg.EnrollURL)
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error parsing enroll-url %s: %s", m.cfg.EnrollURL, err))
	}
	params := link.Query()
	params.Set("program", marketingName)
	params.Set("client_reference_id", m.uuider.Create())
	link.RawQuery = params.Encode()

	return link.String(), nil
}
