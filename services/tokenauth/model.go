package tokenauth

import "time"

// SessionSetup tracks one in-flight authorization-code exchange.
type SessionSetup struct {
	UID          string
	ProviderName string
	ClientID     string
	Scopes       string
	ReturnURL    string
	Verifier     string
	CreatedAt    time.Time
	LastModified *time.Time
	TokenData    *TokenResponse
	Done         bool
}

// TokenStatus is the admin view on the current token of one provider.
type TokenStatus struct {
	ProviderName string     `json:"providerName"`
	ClientID     string     `json:"clientId"`
	SessionUID   string     `json:"sessionUid"`
	Scopes       string     `json:"scopes"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	ValidUntil   time.Time  `json:"validUntil"`
	Connected    bool       `json:"connected"`
}
