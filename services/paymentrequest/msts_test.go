package paymentrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

func TestMSTSAddsSupplierFields(t *testing.T) {
	c, ctrl, urls, shoppers := setup(t)
	defer ctrl.Finish()

	// given
	urls.EXPECT().GetReturnURL(gomock.Any()).Return("https://shop.example/return", nil)
	urls.EXPECT().GetCancelURL(gomock.Any()).Return("https://shop.example/cancel", nil)
	shoppers.EXPECT().GetShopper(gomock.Any()).Return(cartapi.Shopper{}, nil)
	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("ref-42")
	builder := NewMSTS(definition("msts"), config(), mstsConfig(), urls, shoppers,
		paymentcatalog.NewDetector(false), fixedFields{po: "PO-1001", notes: "invoice me"}, uuider)

	// when
	result, err := builder.CreateObject(c, exampleCart())

	// then
	assert.NoError(t, err)
	assert.Equal(t, "PO-1001", result.Payload.Details["poNumber"])
	assert.Equal(t, "invoice me", result.Payload.Details["notes"])
	assert.Equal(t, "ref-42", result.Payload.Details["clientReferenceId"])
}

func TestMSTSEnrollmentLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// given
	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("ref-42")
	builder := NewMSTS(definition("msts"), config(), mstsConfig(), nil, nil,
		paymentcatalog.NewDetector(false), fixedFields{}, uuider)

	// when
	link, err := builder.EnrollmentLink("US", "USD")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "https://enroll.example/start?client_reference_id=ref-42&program=Acme+US", link)
}

func TestMSTSEnrollmentLinkUnknownCombination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// given
	builder := NewMSTS(definition("msts"), config(), mstsConfig(), nil, nil,
		paymentcatalog.NewDetector(false), fixedFields{}, myuuid.NewMockUUIDer(ctrl))

	// when
	_, err := builder.EnrollmentLink("FR", "EUR")

	// then
	assert.Error(t, err)
	assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
}

func mstsConfig() MSTSConfig {
	return MSTSConfig{
		EnrollURL:      "https://enroll.example/start",
		MarketingNames: "US-USD=Acme US;DE-EUR=Acme DE",
	}
}

type fixedFields struct {
	po    string
	notes string
}

func (f fixedFields) PONumber() string {
	return f.po
}

func (f fixedFields) Notes() string {
	return f.notes
}
