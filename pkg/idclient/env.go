package idclient

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

// EnvConfig holds the client settings read from IDENTIFIER_* environment variables.
type EnvConfig struct {
	Region   string `env:"IDENTIFIER_REGION"`
	Endpoint string `env:"IDENTIFIER_ENDPOINT" envDefault:"identifier"`
	BaseURL  string `env:"IDENTIFIER_BASE_URL"`

	// Credentials
	AccessToken string `env:"IDENTIFIER_ACCESS_TOKEN"`

	// Transport tuning
	HTTPTimeout  time.Duration `env:"IDENTIFIER_HTTP_TIMEOUT" envDefault:"30s"`
	RetryMax     int           `env:"IDENTIFIER_RETRY_MAX" envDefault:"3"`
	RetryWaitMin time.Duration `env:"IDENTIFIER_RETRY_WAIT_MIN" envDefault:"1s"`
	RetryWaitMax time.Duration `env:"IDENTIFIER_RETRY_WAIT_MAX" envDefault:"10s"`
	RateLimit    float64       `env:"IDENTIFIER_RATE_LIMIT"`
	RateBurst    int           `env:"IDENTIFIER_RATE_BURST" envDefault:"1"`

	UserAgent string `env:"IDENTIFIER_USER_AGENT"`
	Debug     bool   `env:"IDENTIFIER_DEBUG"`
}

// Config converts the environment settings to a client configuration.
func (e *EnvConfig) Config() *identifier.Config {
	return &identifier.Config{
		Region:       e.Region,
		Endpoint:     e.Endpoint,
		BaseURL:      e.BaseURL,
		AccessToken:  e.AccessToken,
		HTTPTimeout:  e.HTTPTimeout,
		RetryMax:     e.RetryMax,
		RetryWaitMin: e.RetryWaitMin,
		RetryWaitMax: e.RetryWaitMax,
		RateLimit:    e.RateLimit,
		RateBurst:    e.RateBurst,
		UserAgent:    e.UserAgent,
		Debug:        e.Debug,
	}
}

// LoadConfigFromEnv parses IDENTIFIER_* environment variables into a client configuration.
func LoadConfigFromEnv() (*identifier.Config, error) {
	cfg := &EnvConfig{}

	err := env.Parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg.Config(), nil
}
