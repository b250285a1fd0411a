package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL   string
	PollInterval time.Duration
	AdminName    string
	AdminEmail   string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
		PollInterval: time.Second * time.Duration(getEnvAsInt("POLL_INTERVAL_SECONDS", 4)),
		AdminName:    getEnv("ADMIN_NAME", "The Admin"),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetPollInterval returns how often sessions re-fetch the user collection.
func (c *Config) GetPollInterval() time.Duration {
	return c.PollInterval
}

// GetAdminName returns the bootstrap admin display name.
func (c *Config) GetAdminName() string {
	return c.AdminName
}

// GetAdminEmail returns the address notified of new recruits.
func (c *Config) GetAdminEmail() string {
	return c.AdminEmail
}

func (c *Config) GetAIServiceAPIKey() string {
	return getEnv("AI_SERVICE_API_KEY", "")
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
