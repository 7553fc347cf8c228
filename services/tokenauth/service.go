package tokenauth

import (
	"context"
	"fmt"
	"time"

	"github.com/commercekit/paymentcore/lib/codeverifier"
	"github.com/commercekit/paymentcore/lib/myerrors"
	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/mypublisher"
	"github.com/commercekit/paymentcore/lib/mystore"
	"github.com/commercekit/paymentcore/lib/mytime"
	"github.com/commercekit/paymentcore/lib/myuuid"
	"github.com/commercekit/paymentcore/lib/myvault"
)

type service struct {
	providers *Providers
	sessions  mystore.Store[SessionSetup]
	vault     myvault.VaultReadWriter
	exchanger Exchanger
	publisher mypublisher.Publisher
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

func newService(providers *Providers, sessions mystore.Store[SessionSetup], vault myvault.VaultReadWriter,
	exchanger Exchanger, publisher mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		providers: providers,
		sessions:  sessions,
		vault:     vault,
		exchanger: exchanger,
		publisher: publisher,
		nower:     nower,
		uuider:    uuider,
		logger:    logger,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	return nil
}

// tokenUID keys the vault per provider; the tokenizer adapters read the
// same key.
func tokenUID(providerName string) string {
	return myvault.CurrentToken + "_" + providerName
}

// start opens a session: compose the authorization URL and remember the
// verifier so done can prove possession later.
func (s *service) start(c context.Context, providerName string, requestedScopes string, originalReturnURL string, currentHostname string) (string, error) {
	now := s.nower.Now()
	sessionUID := s.uuider.Create()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Start token-setup %s for provider %s", sessionUID, providerName)

	provider, err := s.providers.Get(providerName)
	if err != nil {
		return "", myerrors.NewInvalidInputError(err)
	}

	if requestedScopes == "" {
		requestedScopes = provider.DefaultScopes
	}

	verifier, err := codeverifier.NewVerifier()
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error creating verifier: %s", err))
	}

	authURL := ""
	err = s.sessions.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		authURL, err = s.exchanger.ComposeAuthURL(c, AuthURLRequest{
			ProviderName:  providerName,
			CompletionURL: completionURL(currentHostname),
			Scope:         requestedScopes,
			State:         sessionUID,
			CodeVerifier:  verifier.GetValue(),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error composing auth url: %s", err))
		}

		err := s.sessions.Put(c, sessionUID, SessionSetup{
			UID:          sessionUID,
			ProviderName: providerName,
			ClientID:     provider.ClientID,
			Scopes:       requestedScopes,
			ReturnURL:    originalReturnURL,
			Verifier:     verifier.GetValue(),
			CreatedAt:    now,
			LastModified: &now,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, TokenSetupStarted{
			ProviderName: providerName,
			ClientID:     provider.ClientID,
			SessionUID:   sessionUID,
			Scopes:       requestedScopes,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return authURL, nil
}

// done is the authorization-server callback: trade the code for a token and
// put it in the vault under the provider's key.
func (s *service) done(c context.Context, sessionUID string, code string, currentHostname string) (string, error) {
	now := s.nower.Now()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Complete token-setup %s", sessionUID)

	returnURL := ""
	err := s.sessions.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		session, exists, err := s.sessions.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching session: %s", err))
		}
		if !exists {
			return myerrors.NewNotFoundError(fmt.Errorf("session with uid %s not found", sessionUID))
		}
		returnURL = session.ReturnURL

		tokenResp, err := s.exchanger.GetAccessToken(c, TokenRequest{
			ProviderName: session.ProviderName,
			RedirectURI:  completionURL(currentHostname),
			Code:         code,
			CodeVerifier: session.Verifier,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error getting token: %s", err))
		}

		session.TokenData = &tokenResp
		session.LastModified = &now
		session.Done = true
		err = s.sessions.Put(c, sessionUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}

		err = s.vault.Put(c, tokenUID(session.ProviderName), myvault.Token{
			ProviderName: session.ProviderName,
			ClientID:     session.ClientID,
			SessionUID:   session.UID,
			Scopes:       session.Scopes,
			AccessToken:  tokenResp.AccessToken,
			RefreshToken: tokenResp.RefreshToken,
			ExpiresIn:    tokenResp.ExpiresIn,
			CreatedAt:    session.CreatedAt,
			LastModified: session.LastModified,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing token in vault: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, TokenSetupCompleted{
			ProviderName: session.ProviderName,
			ClientID:     session.ClientID,
			SessionUID:   sessionUID,
			Success:      true,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return returnURL, nil
}

// refreshToken replaces the provider's token before it expires. Meant to be
// driven by cron; a missing token is not a failure.
func (s *service) refreshToken(c context.Context, providerName string) error {
	now := s.nower.Now()
	uid := s.uuider.Create()

	s.logger.Log(c, providerName, mylog.SeverityInfo, "Start token-refresh for provider %s", providerName)

	return s.sessions.RunInTransaction(c, func(c context.Context) error {
		currentToken, exists, err := s.vault.Get(c, tokenUID(providerName))
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching current token: %s", err))
		}
		if !exists || currentToken.RefreshToken == "" {
			return nil
		}

		tokenResp, err := s.exchanger.RefreshAccessToken(c, RefreshRequest{
			ProviderName: providerName,
			RefreshToken: currentToken.RefreshToken,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error refreshing token: %s", err))
		}

		err = s.vault.Put(c, tokenUID(providerName), myvault.Token{
			ProviderName: currentToken.ProviderName,
			ClientID:     currentToken.ClientID,
			SessionUID:   currentToken.SessionUID,
			Scopes:       currentToken.Scopes,
			AccessToken:  tokenResp.AccessToken,
			RefreshToken: tokenResp.RefreshToken,
			ExpiresIn:    tokenResp.ExpiresIn,
			CreatedAt:    currentToken.CreatedAt,
			LastModified: &now,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing token: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, TokenRefreshed{
			ProviderName: providerName,
			ClientID:     currentToken.ClientID,
			UID:          uid,
			Success:      true,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
}

// cancelToken disconnects a provider by clearing its vault entry.
func (s *service) cancelToken(c context.Context, providerName string) error {
	s.logger.Log(c, providerName, mylog.SeverityInfo, "Cancel token for provider %s", providerName)

	return s.sessions.RunInTransaction(c, func(c context.Context) error {
		currentToken, exists, err := s.vault.Get(c, tokenUID(providerName))
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching current token: %s", err))
		}
		if !exists {
			return myerrors.NewNotFoundError(fmt.Errorf("no token for provider %s", providerName))
		}

		err = s.vault.Put(c, tokenUID(providerName), myvault.Token{})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error clearing token: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, TokenCancelled{
			ProviderName: providerName,
			SessionUID:   currentToken.SessionUID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
}

func (s *service) getStatus(c context.Context, providerName string) (TokenStatus, error) {
	token, exists, err := s.vault.Get(c, tokenUID(providerName))
	if err != nil {
		return TokenStatus{}, myerrors.NewInternalError(err)
	}

	return tokenToStatus(token, exists && token.AccessToken != ""), nil
}

func tokenToStatus(token myvault.Token, connected bool) TokenStatus {
	validUntil := token.CreatedAt
	if token.LastModified != nil {
		validUntil = *token.LastModified
	}
	validUntil = validUntil.Add(time.Second * time.Duration(token.ExpiresIn))

	return TokenStatus{
		ProviderName: token.ProviderName,
		ClientID:     token.ClientID,
		SessionUID:   token.SessionUID,
		Scopes:       token.Scopes,
		CreatedAt:    token.CreatedAt,
		LastModified: token.LastModified,
		ValidUntil:   validUntil,
		Connected:    connected,
	}
}

func completionURL(hostname string) string {
	return fmt.Sprintf("%s/tokenauth/done", hostname)
}
