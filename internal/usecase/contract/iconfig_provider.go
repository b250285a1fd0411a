package usecasecontract

import "time"

// IConfigProvider exposes runtime configuration to usecases.
type IConfigProvider interface {
	GetPollInterval() time.Duration
	GetAdminName() string
	GetAdminEmail() string
	GetAppBaseURL() string
	GetAIServiceAPIKey() string
}
