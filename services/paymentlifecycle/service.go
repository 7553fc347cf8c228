package paymentlifecycle

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/lib/mystore"
	"github.com/commercekit/paymentcore/lib/mytime"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/services/cartapi"
	"github.com/commercekit/paymentcore/services/cartsync"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
	"github.com/commercekit/paymentcore/services/paymentevents"
	"github.com/commercekit/paymentcore/services/paymentrequest"
	"github.com/commercekit/paymentcore/services/tokenizer"
)

const defaultWalletTimeout = 5 * time.Second

// CartAccess is what the lifecycle needs from the cart layer. Satisfied by
// cartsync.Service.
//
//go:generate mockgen -source=service.go -package paymentlifecycle -destination cart_access_mock.go CartAccess
type CartAccess interface {
	GetCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error)
	RefreshCart(c context.Context, cartUID string) (*cartapi.CartSnapshot, error)
	ApplyAddresses(c context.Context, cartUID string, billing cartapi.Address, shipping cartapi.Address) (*cartapi.CartSnapshot, error)
	ApplySource(c context.Context, cartUID string, sourceUID string) (*cartapi.CartSnapshot, error)
	ApplyShippingOption(c context.Context, cartUID string, optionUID string) (*cartapi.CartSnapshot, error)
	GetShopper(c context.Context) (cartapi.Shopper, error)
}

var _ CartAccess = &cartsync.Service{}

// CompletionHook runs per-method bookkeeping on the transition to
// Completed. The default is a no-op.
type CompletionHook func(c context.Context, paymentContext PaymentContext) error

type Config struct {
	Request paymentrequest.Config
	MSTS    paymentrequest.MSTSConfig

	// WalletTimeout bounds the wallet address/option sub-flow.
	WalletTimeout time.Duration
}

type service struct {
	cfg        Config
	catalog    *paymentcatalog.Catalog
	evaluator  *paymentcatalog.Evaluator
	detector   paymentcatalog.Detector
	carts      CartAccess
	tokenizers *tokenizer.Registry
	store      mystore.Store[PaymentContext]
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
	hooks      map[string]CompletionHook

	// One guard per payment instance: overlapping lifecycle calls for the
	// same cart serialize instead of racing the cart mutations.
	mutex  sync.Mutex
	guards map[string]*sync.Mutex
}

func newService(cfg Config, catalog *paymentcatalog.Catalog, evaluator *paymentcatalog.Evaluator, detector paymentcatalog.Detector,
	carts CartAccess, tokenizers *tokenizer.Registry, store mystore.Store[PaymentContext], publisher mypublisher.Publisher,
	nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	if cfg.WalletTimeout == 0 {
		cfg.WalletTimeout = defaultWalletTimeout
	}

	return &service{
		cfg:        cfg,
		catalog:    catalog,
		evaluator:  evaluator,
		detector:   detector,
		carts:      carts,
		tokenizers: tokenizers,
		store:      store,
		publisher:  publisher,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
		hooks:      map[string]CompletionHook{},
		guards:     map[string]*sync.Mutex{},
	}
}

func (s *service) RegisterCompletionHook(methodName string, hook CompletionHook) {
	s.hooks[methodName] = hook
}

func (s *service) guard(cartUID string) *sync.Mutex {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	guard, found := s.guards[cartUID]
	if !found {
		guard = &sync.Mutex{}
		s.guards[cartUID] = guard
	}

	return guard
}

// eligibleMethods returns the enabled catalog entries that pass all criteria
// for this cart. The init phase stays silent on mismatches.
func (s *service) eligibleMethods(c context.Context, cartUID string) ([]paymentcatalog.PaymentMethodDefinition, error) {
	cart, err := s.carts.GetCart(c, cartUID)
	if err != nil {
		return nil, err
	}

	total := cart.OrderTotal()
	country := cart.BillingAddress.Country
	if country == "" {
		country = s.cfg.Request.DefaultCountry
	}

	eligible := []paymentcatalog.PaymentMethodDefinition{}
	for _, def := range s.catalog.Enabled() {
		result := s.evaluator.Evaluate(c, def, total.Currency, country, total.Value, true)
		if !result.Eligible() {
			continue
		}
		if !s.evaluator.SupportsRecurringPayments(def, cart) {
			continue
		}
		eligible = append(eligible, def)
	}

	return eligible, nil
}

// createPaymentRequest moves a fresh instance from Created to RequestBuilt
// and hands back the payload for the external tokenization call.
func (s *service) createPaymentRequest(c context.Context, cartUID string, methodName string, form cartapi.StartPayment) (paymentrequest.Result, error) {
	guard := s.guard(cartUID)
	guard.Lock()
	defer guard.Unlock()

	def, found := s.catalog.Get(methodName)
	if !found {
		return paymentrequest.Result{}, myerrors.NewNotFoundError(fmt.Errorf("unknown payment method %s", methodName))
	}
	if def.Disabled {
		return paymentrequest.Result{}, myerrors.NewInvalidInputError(fmt.Errorf("payment method %s is disabled", methodName))
	}

	cart, err := s.carts.GetCart(c, cartUID)
	if err != nil {
		return paymentrequest.Result{}, err
	}

	total := cart.OrderTotal()
	country := form.Country
	if country == "" {
		country = cart.BillingAddress.Country
	}
	eligibility := s.evaluator.Evaluate(c, def, total.Currency, country, total.Value, false)
	if !eligibility.Eligible() {
		return paymentrequest.Result{}, myerrors.NewInvalidInputError(fmt.Errorf("payment method %s not eligible for cart %s", methodName, cartUID))
	}
	if !s.evaluator.SupportsRecurringPayments(def, cart) {
		return paymentrequest.Result{}, myerrors.NewInvalidInputError(fmt.Errorf("payment method %s can not take the recurring items of cart %s", methodName, cartUID))
	}

	builder := s.builderFor(def, form)
	result, err := builder.CreateObject(c, cart)
	if err != nil {
		return paymentrequest.Result{}, err
	}
	if !result.Supported {
		return result, myerrors.NewInvalidInputError(fmt.Errorf("payment method %s can not serve cart %s", methodName, cartUID))
	}

	now := s.nower.Now()
	recurring := s.detector.UseRecurringPayment(cart)
	paymentUID := s.uuider.Create()
	err = s.store.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		err := s.store.Put(c, cartUID, PaymentContext{
			PaymentUID:        paymentUID,
			CartUID:           cartUID,
			MethodName:        methodName,
			State:             StateRequestBuilt,
			AmountInCents:     total.Value,
			Currency:          total.Currency,
			Country:           country,
			OriginalReturnURL: form.ReturnURL,
			CreatedAt:         now,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing payment context: %s", err))
		}

		err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PaymentRequestCreated{
			PaymentUID:    paymentUID,
			CartUID:       cartUID,
			MethodName:    methodName,
			AmountInCents: total.Value,
			Currency:      total.Currency,
			Recurring:     recurring,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return paymentrequest.Result{}, err
	}

	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Payment request for cart %s built with method %s", cartUID, methodName)

	return result, nil
}

// tokenize rebuilds the payload, marks the instance Tokenizing and hands the
// payload to the method's tokenizer. This is the only step with user-driven
// latency: redirect methods come back much later through routing.
func (s *service) tokenize(c context.Context, cartUID string, form cartapi.StartPayment) (tokenizer.Response, error) {
	guard := s.guard(cartUID)
	guard.Lock()
	defer guard.Unlock()

	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return tokenizer.Response{}, err
	}
	if !paymentContext.State.canTransitionTo(StateTokenizing) {
		return tokenizer.Response{}, myerrors.NewInvalidInputError(fmt.Errorf("cart %s not ready for tokenization in state %s", cartUID, paymentContext.State))
	}

	def, found := s.catalog.Get(paymentContext.MethodName)
	if !found {
		return tokenizer.Response{}, myerrors.NewNotFoundError(fmt.Errorf("unknown payment method %s", paymentContext.MethodName))
	}

	cart, err := s.carts.GetCart(c, cartUID)
	if err != nil {
		return tokenizer.Response{}, err
	}

	result, err := s.builderFor(def, form).CreateObject(c, cart)
	if err != nil {
		return tokenizer.Response{}, err
	}

	paymentContext.State = StateTokenizing
	err = s.save(c, paymentContext)
	if err != nil {
		return tokenizer.Response{}, err
	}

	resp, err := s.tokenizers.For(paymentContext.MethodName).CreateSource(c, result.Payload)
	if err != nil {
		s.reportError(c, paymentContext, err.Error())
		return tokenizer.Response{}, err
	}

	return resp, nil
}

// applySourceResponse reconciles the tokenizer's answer back into the cart.
// An error payload moves the instance to ErrorReported and surfaces the
// original payload; pending-redirect flows skip the source application, the
// caller drives the redirect-and-confirm path.
func (s *service) applySourceResponse(c context.Context, cartUID string, resp tokenizer.Response) (PaymentContext, error) {
	guard := s.guard(cartUID)
	guard.Lock()
	defer guard.Unlock()

	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return PaymentContext{}, err
	}
	if !paymentContext.State.canTransitionTo(StateSourceApplied) {
		return PaymentContext{}, myerrors.NewInvalidInputError(fmt.Errorf("cart %s not tokenizing, got state %s", cartUID, paymentContext.State))
	}

	if resp.Error != nil {
		s.reportError(c, paymentContext, resp.Error.Message)
		return PaymentContext{}, myerrors.NewInvalidInputError(resp.Error)
	}
	if resp.Source == nil {
		s.reportError(c, paymentContext, "tokenizer returned neither source nor error")
		return PaymentContext{}, myerrors.NewInternalError(fmt.Errorf("tokenizer returned neither source nor error for cart %s", cartUID))
	}
	source := *resp.Source

	billing, shipping := convertAddresses(source)
	err = paymentrequest.ValidateAddress(billing)
	if err != nil {
		return PaymentContext{}, err
	}
	err = paymentrequest.ValidateAddress(shipping)
	if err != nil {
		return PaymentContext{}, err
	}

	// Both addresses travel in one atomic cart update.
	if !billing.IsEmpty() || !shipping.IsEmpty() {
		_, err = s.carts.ApplyAddresses(c, cartUID, billing, shipping)
		if err != nil {
			s.reportError(c, paymentContext, err.Error())
			return PaymentContext{}, err
		}
	}

	if source.AutoAppliesToCart() {
		_, err = s.carts.ApplySource(c, cartUID, source.UID)
		if err != nil {
			s.reportError(c, paymentContext, err.Error())
			return PaymentContext{}, err
		}
	}

	paymentContext.State = StateSourceApplied
	paymentContext.SourceUID = source.UID
	paymentContext.SourceFlow = string(source.Flow)
	paymentContext.SourceState = string(source.State)
	err = s.store.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		err := s.save(c, paymentContext)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.SourceApplied{
			PaymentUID: paymentContext.PaymentUID,
			CartUID:    cartUID,
			MethodName: paymentContext.MethodName,
			SourceUID:  source.UID,
			Flow:       string(source.Flow),
			State:      string(source.State),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return PaymentContext{}, err
	}

	return paymentContext, nil
}

// completeSource runs the per-method completion hook and closes the
// instance.
func (s *service) completeSource(c context.Context, cartUID string) (PaymentContext, error) {
	guard := s.guard(cartUID)
	guard.Lock()
	defer guard.Unlock()

	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return PaymentContext{}, err
	}
	if !paymentContext.State.canTransitionTo(StateCompleted) {
		return PaymentContext{}, myerrors.NewInvalidInputError(fmt.Errorf("cart %s has no applied source, state %s", cartUID, paymentContext.State))
	}

	hook, found := s.hooks[paymentContext.MethodName]
	if found {
		err = hook(c, paymentContext)
		if err != nil {
			return PaymentContext{}, err
		}
	}

	paymentContext.State = StateCompleted
	err = s.store.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		err := s.save(c, paymentContext)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PaymentCompleted{
			PaymentUID: paymentContext.PaymentUID,
			CartUID:    cartUID,
			MethodName: paymentContext.MethodName,
			Status:     string(StateCompleted),
			Success:    true,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return PaymentContext{}, err
	}

	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Payment for cart %s completed with method %s", cartUID, paymentContext.MethodName)

	return paymentContext, nil
}

// startPayment chains the synchronous part of the flow: build the request,
// tokenize it and reconcile the answer. Redirect methods leave here in
// pending_redirect, the rest arrive applied.
func (s *service) startPayment(c context.Context, cartUID string, methodName string, form cartapi.StartPayment) (tokenizer.Source, error) {
	_, err := s.createPaymentRequest(c, cartUID, methodName, form)
	if err != nil {
		return tokenizer.Source{}, err
	}

	resp, err := s.tokenize(c, cartUID, form)
	if err != nil {
		return tokenizer.Source{}, err
	}

	_, err = s.applySourceResponse(c, cartUID, resp)
	if err != nil {
		return tokenizer.Source{}, err
	}

	return *resp.Source, nil
}

// finalizeReturn handles the shopper coming back from an external redirect
// and computes where to send the browser next.
func (s *service) finalizeReturn(c context.Context, cartUID string, status string) (string, error) {
	guard := s.guard(cartUID)
	guard.Lock()
	paymentContext, err := s.fetch(c, cartUID)
	guard.Unlock()
	if err != nil {
		return "", err
	}

	if status == "success" && paymentContext.State.canTransitionTo(StateCompleted) {
		_, err = s.completeSource(c, cartUID)
		if err != nil {
			return "", err
		}
	}

	return addStatusQueryParam(paymentContext.OriginalReturnURL, status)
}

// isReadySubmit gates any proceed-to-next-page action on the source state.
func (s *service) isReadySubmit(c context.Context, cartUID string) (bool, error) {
	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return false, err
	}

	def, found := s.catalog.Get(paymentContext.MethodName)
	if !found {
		return false, myerrors.NewNotFoundError(fmt.Errorf("unknown payment method %s", paymentContext.MethodName))
	}

	return tokenizer.IsReadySubmitState(tokenizer.State(paymentContext.SourceState), def.SubmitThenRedirect), nil
}

// routing decides the next page: the original return URL with the outcome
// appended as a status query param.
func (s *service) routing(c context.Context, cartUID string) (string, error) {
	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return "", err
	}

	status := "open"
	switch paymentContext.State {
	case StateCompleted, StateSourceApplied:
		status = "success"
	case StateErrorReported:
		status = "error"
	}

	return addStatusQueryParam(paymentContext.OriginalReturnURL, status)
}

// shippingAddressChanged is the wallet sub-flow: the sheet must always get
// an answer, failures and timeouts travel as a structured failure object.
func (s *service) shippingAddressChanged(c context.Context, cartUID string, shipping cartapi.Address) paymentrequest.WalletUpdate {
	c, cancel := context.WithTimeout(c, s.cfg.WalletTimeout)
	defer cancel()

	err := paymentrequest.ValidateAddress(shipping)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	current, err := s.carts.GetCart(c, cartUID)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	cart, err := s.carts.ApplyAddresses(c, cartUID, current.BillingAddress, shipping)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	return s.rebuildWalletSheet(c, cartUID, cart)
}

func (s *service) shippingOptionChanged(c context.Context, cartUID string, optionUID string) paymentrequest.WalletUpdate {
	c, cancel := context.WithTimeout(c, s.cfg.WalletTimeout)
	defer cancel()

	cart, err := s.carts.ApplyShippingOption(c, cartUID, optionUID)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	return s.rebuildWalletSheet(c, cartUID, cart)
}

func (s *service) rebuildWalletSheet(c context.Context, cartUID string, cart *cartapi.CartSnapshot) paymentrequest.WalletUpdate {
	paymentContext, err := s.fetch(c, cartUID)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	def, found := s.catalog.Get(paymentContext.MethodName)
	if !found {
		return paymentrequest.NewWalletErrorObject(fmt.Sprintf("unknown payment method %s", paymentContext.MethodName))
	}

	update, err := s.builderFor(def, cartapi.StartPayment{}).UpdateObject(c, cart)
	if err != nil {
		return paymentrequest.NewWalletErrorObject(err.Error())
	}

	return update
}

func (s *service) builderFor(def paymentcatalog.PaymentMethodDefinition, form cartapi.StartPayment) paymentrequest.Builder {
	return paymentrequest.New(def, paymentrequest.Deps{
		Config:   s.cfg.Request,
		MSTS:     s.cfg.MSTS,
		URLs:     formHooks{form: form},
		Shoppers: s.carts,
		Detector: s.detector,
		Fields:   formFields{form: form},
		UUIDer:   s.uuider,
	})
}

func (s *service) fetch(c context.Context, cartUID string) (PaymentContext, error) {
	paymentContext, found, err := s.store.Get(c, cartUID)
	if err != nil {
		return PaymentContext{}, myerrors.NewInternalError(fmt.Errorf("error fetching payment context for cart %s: %s", cartUID, err))
	}
	if !found {
		return PaymentContext{}, myerrors.NewNotFoundError(fmt.Errorf("no payment in progress for cart %s", cartUID))
	}

	return paymentContext, nil
}

func (s *service) save(c context.Context, paymentContext PaymentContext) error {
	now := s.nower.Now()
	paymentContext.LastModified = &now

	err := s.store.Put(c, paymentContext.CartUID, paymentContext)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing payment context for cart %s: %s", paymentContext.CartUID, err))
	}

	return nil
}

func (s *service) reportError(c context.Context, paymentContext PaymentContext, message string) {
	paymentContext.State = StateErrorReported
	paymentContext.LastError = message

	err := s.save(c, paymentContext)
	if err != nil {
		s.logger.Log(c, paymentContext.CartUID, mylog.SeverityError, "Error storing error state for cart %s: %s", paymentContext.CartUID, err)
	}

	s.logger.Log(c, paymentContext.CartUID, mylog.SeverityWarn, "Payment for cart %s failed: %s", paymentContext.CartUID, message)
}

// convertAddresses maps both processor addresses to the commerce shape.
// The conversions are independent; both are done before the single cart
// mutation goes out.
func convertAddresses(source tokenizer.Source) (cartapi.Address, cartapi.Address) {
	return convertAddress(source.Billing), convertAddress(source.Shipping)
}

func convertAddress(address *tokenizer.SourceAddress) cartapi.Address {
	if address == nil {
		return cartapi.Address{}
	}

	return cartapi.Address{
		FirstName:    address.FirstName,
		LastName:     address.LastName,
		PhoneNumber:  address.PhoneNumber,
		EmailAddress: address.Email,
		Line1:        address.Line1,
		Line2:        address.Line2,
		City:         address.City,
		State:        address.State,
		PostalCode:   address.PostalCode,
		Country:      address.Country,
	}
}

func addStatusQueryParam(orgURL string, status string) (string, error) {
	u, err := url.Parse(orgURL)
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error parsing return URL %s: %s", orgURL, err))
	}
	params := u.Query()
	params.Set("status", status)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

type formHooks struct {
	form cartapi.StartPayment
}

func (h formHooks) GetReturnURL(c context.Context) (string, error) {
	return h.form.ReturnURL, nil
}

func (h formHooks) GetCancelURL(c context.Context) (string, error) {
	return h.form.CancelURL, nil
}

type formFields struct {
	form cartapi.StartPayment
}

func (f formFields) PONumber() string {
	return f.form.Supplier.PONumber
}

func (f formFields) Notes() string {
	return f.form.Supplier.Notes
}
