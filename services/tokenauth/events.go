package tokenauth

const (
	TopicName               = "tokenauth"
	tokenSetupStartedName   = TopicName + ".setupStarted"
	tokenSetupCompletedName = TopicName + ".setupCompleted"
	tokenRefreshedName      = TopicName + ".refreshed"
	tokenCancelledName      = TopicName + ".cancelled"
)

type TokenSetupStarted struct {
	ProviderName string
	ClientID     string
	SessionUID   string
	Scopes       string
}

func (e TokenSetupStarted) GetEventTypeName() string {
	return tokenSetupStartedName
}

func (e TokenSetupStarted) GetAggregateName() string {
	return e.SessionUID
}

type TokenSetupCompleted struct {
	ProviderName string
	ClientID     string
	SessionUID   string
	Success      bool
}

func (e TokenSetupCompleted) GetEventTypeName() string {
	return tokenSetupCompletedName
}

func (e TokenSetupCompleted) GetAggregateName() string {
	return e.SessionUID
}

type TokenRefreshed struct {
	ProviderName string
	ClientID     string
	UID          string
	Success      bool
}

func (e TokenRefreshed) GetEventTypeName() string {
	return tokenRefreshedName
}

func (e TokenRefreshed) GetAggregateName() string {
	return e.UID
}

type TokenCancelled struct {
	ProviderName string
	SessionUID   string
}

func (e TokenCancelled) GetEventTypeName() string {
	return tokenCancelledName
}

func (e TokenCancelled) GetAggregateName() string {
	return e.SessionUID
}
