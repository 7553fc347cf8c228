package paymentrequest

import (
	"context"
	"fmt"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
)

// Result is what payload construction hands back. Supported is false when
// the method can not serve the current cart; the caller updates its own
// eligibility cache, the builder never mutates shared configuration.
type Result struct {
	Payload   Payload
	Supported bool
}

//go:generate mockgen -source=builder.go -package paymentrequest -destination builder_mock.go Builder
type Builder interface {
	CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error)
	UpdateObject(c context.Context, cart *cartapi.CartSnapshot) (WalletUpdate, error)
}

// URLHooks are supplied by the surrounding application and may perform I/O.
type URLHooks interface {
	GetReturnURL(c context.Context) (string, error)
	GetCancelURL(c context.Context) (string, error)
}

// ShopperReader provides the shopper record backing email fallback and
// buyer-history signals.
type ShopperReader interface {
	GetShopper(c context.Context) (cartapi.Shopper, error)
}

type Config struct {
	UpstreamID      string
	DefaultCountry  string
	DefaultCurrency string
	TotalLabel      string

	// Overrides are static per-method source fields merged into the <type>
	// sub-object as the final step; they win over computed fields.
	Overrides Details
}

type base struct {
	def      paymentcatalog.PaymentMethodDefinition
	cfg      Config
	urls     URLHooks
	shoppers ShopperReader
	detector paymentcatalog.Detector
	logger   mylog.Logger
}

func newBase(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector) base {
	return base{
		def:      def,
		cfg:      cfg,
		urls:     urls,
		shoppers: shoppers,
		detector: detector,
		logger:   mylog.New("paymentrequest"),
	}
}

// createObject builds the shared payload shape. A nil cart never panics:
// all derived totals default to zero and all lists stay empty.
func (b base) createObject(c context.Context, cart *cartapi.CartSnapshot) (Payload, error) {
	payload := Payload{
		Type:       b.def.WireType(b.detector.UseRecurringPayment(cart)),
		UpstreamID: b.cfg.UpstreamID,
		Currency:   b.currency(cart),
	}

	owner := b.owner(c, cart)
	payload.Owner = &owner

	if b.def.PaymentSessionSupported() && cart.HasActivePaymentSession() {
		payload.SessionID = cart.PaymentSession.ID
	} else {
		payload.Amount = cart.OrderTotal().Value
	}

	if b.def.ExpressCheckout {
		payload.Country = b.country(cart)
		payload.Total = &Total{
			Label:  b.totalLabel(),
			Amount: cart.OrderTotal().Value,
		}
		payload.DisplayItems = b.displayItems(cart)
		payload.ShippingOptions = b.walletShippingOptions(cart)
		payload.RequestShipping = len(payload.ShippingOptions) > 0
	}

	details, err := b.details(c)
	if err != nil {
		return Payload{}, err
	}
	payload.Details = details

	return payload, nil
}

// CreateObject is the default construction, shared by all methods without
// a protocol of their own.
func (b base) CreateObject(c context.Context, cart *cartapi.CartSnapshot) (Result, error) {
	payload, err := b.createObject(c, cart)
	if err != nil {
		return Result{}, err
	}
	payload.Details = b.applyOverrides(payload.Details)

	return Result{Payload: payload, Supported: true}, nil
}

// UpdateObject recomputes the wallet sheet after an address or option change.
func (b base) UpdateObject(c context.Context, cart *cartapi.CartSnapshot) (WalletUpdate, error) {
	return WalletUpdate{
		Status: WalletStatusSuccess,
		Total: &Total{
			Label:  b.totalLabel(),
			Amount: cart.OrderTotal().Value,
		},
		DisplayItems:    b.displayItems(cart),
		ShippingOptions: b.walletShippingOptions(cart),
	}, nil
}

func (b base) country(cart *cartapi.CartSnapshot) string {
	if cart != nil && cart.BillingAddress.Country != "" {
		return cart.BillingAddress.Country
	}

	return b.cfg.DefaultCountry
}

func (b base) currency(cart *cartapi.CartSnapshot) string {
	if cart != nil && cart.Pricing.OrderTotal.Currency != "" {
		return cart.Pricing.OrderTotal.Currency
	}

	return b.cfg.DefaultCurrency
}

func (b base) totalLabel() string {
	if b.cfg.TotalLabel != "" {
		return b.cfg.TotalLabel
	}

	return "Order Total"
}

func (b base) owner(c context.Context, cart *cartapi.CartSnapshot) Owner {
	billing := cartapi.Address{}
	if cart != nil {
		billing = cart.BillingAddress
	}

	shopper, err := b.shoppers.GetShopper(c)
	if err != nil {
		// email fallback only; a missing shopper record never blocks payload construction
		b.logger.Log(c, b.def.Name, mylog.SeverityWarn, "Error fetching shopper record: %s", err)
		shopper = cartapi.Shopper{}
	}

	return NewOwner(billing, shopper)
}

func (b base) displayItems(cart *cartapi.CartSnapshot) []DisplayItem {
	if cart == nil {
		return nil
	}

	items := []DisplayItem{}
	for _, item := range cart.LineItems {
		items = append(items, DisplayItem{
			Label:  item.Product.Name,
			Amount: item.Pricing.Quantity.Value,
		})
	}
	if cart.Pricing.Discount.Value != 0 {
		items = append(items, DisplayItem{Label: "Discount", Amount: -cart.Pricing.Discount.Value})
	}
	if cart.Pricing.Tax.Value != 0 {
		items = append(items, DisplayItem{Label: "Tax", Amount: cart.Pricing.Tax.Value})
	}
	if cart.Pricing.ShippingAndHandling.Value != 0 {
		items = append(items, DisplayItem{Label: "Shipping", Amount: cart.Pricing.ShippingAndHandling.Value})
	}

	return items
}

func (b base) walletShippingOptions(cart *cartapi.CartSnapshot) []WalletShippingOption {
	if cart == nil {
		return nil
	}

	options := []WalletShippingOption{}
	for _, option := range cart.ShippingOptions {
		options = append(options, WalletShippingOption{
			ID:          option.ID,
			Label:       option.Description,
			Amount:      option.Cost.Value,
			Description: option.Description,
		})
	}

	return options
}

// details builds the minimal <type> sub-object and merges the static
// configuration overrides last.
func (b base) details(c context.Context) (Details, error) {
	returnURL, err := b.urls.GetReturnURL(c)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error fetching return-url for %s: %s", b.def.Name, err))
	}
	cancelURL, err := b.urls.GetCancelURL(c)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error fetching cancel-url for %s: %s", b.def.Name, err))
	}

	details := Details{
		"returnUrl": returnURL,
		"cancelUrl": cancelURL,
	}

	return details, nil
}

func (b base) applyOverrides(details Details) Details {
	for key, value := range b.cfg.Overrides {
		details[key] = value
	}

	return details
}

// NewStandard serves methods without builder deltas of their own.
func NewStandard(def paymentcatalog.PaymentMethodDefinition, cfg Config, urls URLHooks, shoppers ShopperReader, detector paymentcatalog.Detector) Builder {
	return newBase(def, cfg, urls, shoppers, detector)
}
