package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/commercekit/paymentcore/lib/myhttpclient"
	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/lib/mypubsub"
	"github.com/commercekit/paymentcore/lib/myqueue"
	"github.com/commercekit/paymentcore/lib/mystore"
	"github.com/commercekit/paymentcore/lib/mytime"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/lib/myvault"
	"github.com/commercekit/paymentcore/services/cartsync"
	"github.com/commercekit/paymentcore/services/paymentcatalog"
	"github.com/commercekit/paymentcore/services/paymentlifecycle"
	"github.com/commercekit/paymentcore/services/paymentrequest"
	"github.com/commercekit/paymentcore/services/tokenauth"
	"github.com/commercekit/paymentcore/services/tokenizer"
	"github.com/commercekit/paymentcore/services/warmup"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	pubsubClient, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub client: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	publisher, publisherCleanup, err := mypublisher.New(c, pubsubClient, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	vault, vaultCleanup, err := myvault.New(c)
	if err != nil {
		log.Fatalf("Error creating vault: %s", err)
	}
	defer vaultCleanup()

	catalog, err := loadCatalog()
	if err != nil {
		log.Fatalf("Error loading payment method catalog: %s", err)
	}

	detector := paymentcatalog.NewDetector(os.Getenv("FORCE_RECURRING") == "true")
	evaluator := paymentcatalog.NewEvaluator(paymentcatalog.NewStaticMessageProvider(), paymentcatalog.NewLogNotifier(), detector)

	cartService := cartsync.NewService(cartsync.NewGateway(os.Getenv("CART_SERVICE_URL"), myhttpclient.New()), publisher)
	err = cartService.CreateTopics(c)
	if err != nil {
		log.Fatalf("Error creating topics: %s", err)
	}

	registry, err := createTokenizers(vault, uuider)
	if err != nil {
		log.Fatalf("Error creating tokenizers: %s", err)
	}

	paymentStore, paymentStoreCleanup, err := mystore.New[paymentlifecycle.PaymentContext](c)
	if err != nil {
		log.Fatalf("Error creating payment store: %s", err)
	}
	defer paymentStoreCleanup()

	lifecycleService := paymentlifecycle.NewWebService(paymentlifecycle.Config{
		Request: paymentrequest.Config{
			UpstreamID:      os.Getenv("UPSTREAM_MERCHANT_ID"),
			DefaultCountry:  "US",
			DefaultCurrency: "USD",
		},
		MSTS: paymentrequest.MSTSConfig{
			EnrollURL:      os.Getenv("MSTS_ENROLL_URL"),
			MarketingNames: os.Getenv("MSTS_MARKETING_NAMES"),
		},
	}, catalog, evaluator, detector, cartService, registry, paymentStore, publisher, nower, uuider)
	err = lifecycleService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering payment lifecycle endpoints: %s", err)
	}

	providers := tokenauth.NewProviders()
	providers.Set("stripe", os.Getenv("STRIPE_CLIENT_ID"), os.Getenv("STRIPE_CLIENT_SECRET"), "", "")
	providers.Set("mollie", os.Getenv("MOLLIE_CLIENT_ID"), os.Getenv("MOLLIE_CLIENT_SECRET"), "", "")
	providers.Set("adyen", os.Getenv("ADYEN_CLIENT_ID"), os.Getenv("ADYEN_CLIENT_SECRET"), "", "")

	sessionStore, sessionStoreCleanup, err := mystore.New[tokenauth.SessionSetup](c)
	if err != nil {
		log.Fatalf("Error creating session store: %s", err)
	}
	defer sessionStoreCleanup()

	tokenAuthService := tokenauth.NewWebService(providers, sessionStore, vault,
		tokenauth.NewExchanger(providers), publisher, nower, uuider)
	err = tokenAuthService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering tokenauth endpoints: %s", err)
	}

	warmup.NewService(vault, []string{"stripe", "mollie", "adyen"}).RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func loadCatalog() (*paymentcatalog.Catalog, error) {
	filename := os.Getenv("PAYMENT_METHODS_FILE")
	if filename == "" {
		return paymentcatalog.NewCatalog(paymentcatalog.DefaultDefinitions()...)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %s", filename, err)
	}
	defer f.Close()

	return paymentcatalog.NewCatalogFromJSON(f)
}

// createTokenizers maps each payment method onto the processor that can
// capture its credentials. Stripe's source API is the default; Adyen takes
// the drop-in card form, Mollie the european redirect methods.
func createTokenizers(vault myvault.VaultReader, uuider myuuid.UUIDer) (*tokenizer.Registry, error) {
	stripeTokenizer := tokenizer.NewStripe(tokenizer.NewStripePayer(), os.Getenv("STRIPE_API_KEY"), vault)

	adyenAPIKey := os.Getenv("ADYEN_API_KEY")
	adyenTokenizer := tokenizer.NewAdyen(tokenizer.NewAdyenPayer(os.Getenv("ADYEN_ENVIRONMENT"), adyenAPIKey),
		adyenAPIKey, os.Getenv("ADYEN_MERCHANT_ACCOUNT"), vault, uuider)

	molliePayer, err := tokenizer.NewMolliePayer()
	if err != nil {
		return nil, fmt.Errorf("error creating mollie client: %s", err)
	}
	mollieTokenizer := tokenizer.NewMollie(molliePayer, os.Getenv("MOLLIE_API_KEY"), vault)

	registry := tokenizer.NewRegistry(stripeTokenizer)
	registry.Register("dropIn", adyenTokenizer)
	registry.Register("ideal", mollieTokenizer)
	registry.Register("bancontact", mollieTokenizer)
	registry.Register("sofort", mollieTokenizer)

	return registry, nil
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
