package tokenauth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeAuthURL(t *testing.T) {
	exchanger := NewExchanger(NewProviders())

	authURL, err := exchanger.ComposeAuthURL(context.TODO(), AuthURLRequest{
		ProviderName:  "stripe",
		CompletionURL: "http://localhost:8888/tokenauth/done",
		Scope:         "read_write",
		State:         "session-1",
		CodeVerifier:  "verifier-abc",
	})

	assert.NoError(t, err)
	parsed, err := url.Parse(authURL)
	assert.NoError(t, err)
	assert.Equal(t, "connect.stripe.com", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, "stripe_client_id", parsed.Query().Get("client_id"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "session-1", parsed.Query().Get("state"))
	assert.Equal(t, "S256", parsed.Query().Get("code_challenge_method"))
	assert.NotEmpty(t, parsed.Query().Get("code_challenge"))
	assert.Equal(t, "http://localhost:8888/tokenauth/done", parsed.Query().Get("redirect_uri"))
}

func TestComposeAuthURLUnknownProvider(t *testing.T) {
	exchanger := NewExchanger(NewProviders())

	_, err := exchanger.ComposeAuthURL(context.TODO(), AuthURLRequest{ProviderName: "doesNotExist"})

	assert.Error(t, err)
}

func TestGetAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/tokens", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "mollie_client_id", username)
		assert.Equal(t, "mollie_secret", password)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "code-123", r.FormValue("code"))
		assert.Equal(t, "verifier-abc", r.FormValue("code_verifier"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"token_type":"bearer","access_token":"tok_abc","refresh_token":"ref_abc","expires_in":3600}`)
	}))
	defer server.Close()

	providers := NewProviders()
	providers.Set("mollie", "", "", "", server.URL)
	exchanger := NewExchanger(providers)

	resp, err := exchanger.GetAccessToken(context.TODO(), TokenRequest{
		ProviderName: "mollie",
		RedirectURI:  "http://localhost:8888/tokenauth/done",
		Code:         "code-123",
		CodeVerifier: "verifier-abc",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok_abc", resp.AccessToken)
	assert.Equal(t, "ref_abc", resp.RefreshToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestGetAccessTokenUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	providers := NewProviders()
	providers.Set("mollie", "", "", "", server.URL)
	exchanger := NewExchanger(providers)

	_, err := exchanger.GetAccessToken(context.TODO(), TokenRequest{ProviderName: "mollie", Code: "code-123"})

	assert.ErrorContains(t, err, "401")
}

func TestRefreshAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// stripe sends the secret as basic auth username
		username, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "stripe_secret", username)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		assert.Equal(t, "ref_old", r.FormValue("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"access_token":"tok_new","refresh_token":"ref_new","expires_in":3600}`)
	}))
	defer server.Close()

	providers := NewProviders()
	providers.Set("stripe", "", "", "", server.URL)
	exchanger := NewExchanger(providers)

	resp, err := exchanger.RefreshAccessToken(context.TODO(), RefreshRequest{
		ProviderName: "stripe",
		RefreshToken: "ref_old",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok_new", resp.AccessToken)
}
