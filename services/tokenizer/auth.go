package tokenizer

import (
	"context"

	"github.com/commercekit/paymentcore/lib/mylog"
	"github.com/commercekit/paymentcore/lib/myvault"
)

type authenticator interface {
	UseAPIKey(key string)
	UseToken(accessToken string)
}

// setupAuthentication prefers a vault-held oauth token over the static api
// key. Falls back to the key on any vault trouble.
func setupAuthentication(c context.Context, vault myvault.VaultReader, providerName string, apiKey string, logger mylog.Logger, target authenticator) {
	tokenUID := myvault.CurrentToken + "_" + providerName
	accessToken, exist, err := vault.Get(c, tokenUID)
	if err != nil || !exist || accessToken.AccessToken == "" {
		logger.Log(c, providerName, mylog.SeverityInfo, "Using api key for %s", providerName)
		target.UseAPIKey(apiKey)
		return
	}

	logger.Log(c, providerName, mylog.SeverityInfo, "Using access token for %s", providerName)
	target.UseToken(accessToken.AccessToken)
}
