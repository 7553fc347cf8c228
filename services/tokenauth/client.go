package tokenauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/commercekit/paymentcore/lib/codeverifier"
)

type AuthURLRequest struct {
	ProviderName  string
	CompletionURL string
	Scope         string
	State         string
	CodeVerifier  string
}

type TokenRequest struct {
	ProviderName string
	RedirectURI  string
	Code         string
	CodeVerifier string
}

type RefreshRequest struct {
	ProviderName string
	RefreshToken string
}

type TokenResponse struct {
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	AccessToken  string `json:"access_token"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

// Exchanger talks oauth2 with a processor's authorization server.
//
//go:generate mockgen -source=client.go -package tokenauth -destination exchanger_mock.go Exchanger
type Exchanger interface {
	ComposeAuthURL(c context.Context, req AuthURLRequest) (string, error)
	GetAccessToken(c context.Context, req TokenRequest) (TokenResponse, error)
	RefreshAccessToken(c context.Context, req RefreshRequest) (TokenResponse, error)
}

type exchanger struct {
	providers *Providers
}

func NewExchanger(providers *Providers) Exchanger {
	return &exchanger{
		providers: providers,
	}
}

func (e exchanger) ComposeAuthURL(c context.Context, req AuthURLRequest) (string, error) {
	provider, err := e.providers.Get(req.ProviderName)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(provider.AuthEndpoint.FullURL())
	if err != nil {
		return "", err
	}

	method, challenge, err := codeverifier.NewVerifierFrom(req.CodeVerifier).CreateChallenge()
	if err != nil {
		return "", fmt.Errorf("error creating challenge: %s", err)
	}

	u.RawQuery = url.Values{
		"client_id":             []string{provider.ClientID},
		"code_challenge":        []string{challenge},
		"code_challenge_method": []string{method},
		"redirect_uri":          []string{req.CompletionURL},
		"response_type":         []string{"code"},
		"scope":                 []string{req.Scope},
		"state":                 []string{req.State},
	}.Encode()

	return u.String(), nil
}

func (e exchanger) GetAccessToken(c context.Context, req TokenRequest) (TokenResponse, error) {
	provider, err := e.providers.Get(req.ProviderName)
	if err != nil {
		return TokenResponse{}, err
	}

	requestBody := url.Values{
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {req.RedirectURI},
		"code":          {req.Code},
		"code_verifier": {req.CodeVerifier},
	}.Encode()

	return e.postForToken(c, provider, provider.TokenEndpoint.FullURL(), requestBody)
}

func (e exchanger) RefreshAccessToken(c context.Context, req RefreshRequest) (TokenResponse, error) {
	provider, err := e.providers.Get(req.ProviderName)
	if err != nil {
		return TokenResponse{}, err
	}

	requestBody := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {req.RefreshToken},
	}.Encode()

	return e.postForToken(c, provider, provider.TokenEndpoint.FullURL(), requestBody)
}

func (e exchanger) postForToken(c context.Context, provider Provider, tokenURL string, requestBody string) (TokenResponse, error) {
	username, password := provider.Credentials()

	status, respBody, err := send(c, username, password, tokenURL, []byte(requestBody))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("error getting token: %s", err)
	}
	if status != 200 {
		return TokenResponse{}, fmt.Errorf("error getting token: %d", status)
	}

	resp := TokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("error parsing token response: %s", err)
	}

	return resp, nil
}

const tokenCallTimeout = 5 * time.Second

func send(c context.Context, username string, password string, url string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(c, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating http request for %s: %s", url, err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(username, password)

	httpClient := &http.Client{
		Timeout: tokenCallTimeout,
	}
	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("error calling %s: %s", url, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response of %s: %s", url, err)
	}

	return httpResp.StatusCode, respBody, nil
}
