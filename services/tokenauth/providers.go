package tokenauth

import (
	"fmt"
)

type Endpoint struct {
	Hostname string
	Path     string
}

func (e Endpoint) FullURL() string {
	return e.Hostname + e.Path
}

// Provider describes one processor's oauth surface. The built-in entries
// point at the test environments; Set overrides them per deployment.
type Provider struct {
	Name          string
	ClientID      string
	Secret        string
	AuthEndpoint  Endpoint
	TokenEndpoint Endpoint
	DefaultScopes string

	// SecretAsUsername marks providers that expect the secret as the basic
	// auth username with an empty password.
	SecretAsUsername bool
}

// Credentials returns the basic auth pair for the token endpoint.
func (p Provider) Credentials() (string, string) {
	if p.SecretAsUsername {
		return p.Secret, ""
	}

	return p.ClientID, p.Secret
}

type Providers struct {
	byName map[string]Provider
}

func NewProviders() *Providers {
	return &Providers{
		byName: map[string]Provider{
			"adyen": {
				Name:     "adyen",
				ClientID: "adyen_client_id",
				Secret:   "adyen_secret",
				AuthEndpoint: Endpoint{
					Hostname: "https://ca-test.adyen.com",
					Path:     "/ca/ca/oauth/connect.shtml",
				},
				TokenEndpoint: Endpoint{
					Hostname: "https://oauth-test.adyen.com",
					Path:     "/v1/token",
				},
				// NB: order matters
				DefaultScopes: "psp.onlinepayment:write psp.onlinepayment.tokenization:write psp.accountsettings:write psp.webhook:write",
			},
			"stripe": {
				Name:     "stripe",
				ClientID: "stripe_client_id",
				Secret:   "stripe_secret",
				AuthEndpoint: Endpoint{
					Hostname: "https://connect.stripe.com",
					Path:     "/oauth/authorize",
				},
				TokenEndpoint: Endpoint{
					Hostname: "https://connect.stripe.com",
					Path:     "/oauth/token",
				},
				DefaultScopes:    "read_write",
				SecretAsUsername: true,
			},
			"mollie": {
				Name:     "mollie",
				ClientID: "mollie_client_id",
				Secret:   "mollie_secret",
				AuthEndpoint: Endpoint{
					Hostname: "https://www.mollie.com",
					Path:     "/oauth2/authorize",
				},
				TokenEndpoint: Endpoint{
					Hostname: "https://api.mollie.com",
					Path:     "/oauth2/tokens",
				},
				DefaultScopes: "organizations.read profiles.read payments.read payments.write",
			},
		},
	}
}

// Set overrides the credentials and hostnames of a provider. Empty values
// leave the current setting untouched.
func (p *Providers) Set(providerName string, clientID string, secret string, authHostname string, tokenHostname string) {
	provider, found := p.byName[providerName]
	if !found {
		provider = Provider{Name: providerName}
	}

	if clientID != "" {
		provider.ClientID = clientID
	}
	if secret != "" {
		provider.Secret = secret
	}
	if authHostname != "" {
		provider.AuthEndpoint.Hostname = authHostname
	}
	if tokenHostname != "" {
		provider.TokenEndpoint.Hostname = tokenHostname
	}

	p.byName[providerName] = provider
}

func (p *Providers) Get(providerName string) (Provider, error) {
	provider, found := p.byName[providerName]
	if !found {
		return Provider{}, fmt.Errorf("provider with name '%s' not known", providerName)
	}

	return provider, nil
}

func (p *Providers) All() map[string]Provider {
	return p.byName
}
