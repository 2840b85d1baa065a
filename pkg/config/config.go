package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv   string `env:"STOREFRONT_APP_ENV" envDefault:"dev"`
	LogLevel string `env:"STOREFRONT_LOG_LEVEL" envDefault:"warn"`

	APIURL      string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"STOREFRONT_HTTP_TIMEOUT" envDefault:"0s"`

	// StatePath is the SQLite file that persists the bearer token between runs.
	StatePath string `env:"STOREFRONT_STATE_PATH" envDefault:"storefront.db"`

	OTelEndpoint string `env:"STOREFRONT_OTEL_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
