package config

import (
	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// defaults. Use Load to construct a Config.
type Config struct {
	// Env is the deployment environment (e.g. prod, dev). The faucet
	// endpoint is only mounted outside prod.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Store    configs.Store    `envPrefix:"STORE_"`
	Platform configs.Platform `envPrefix:"PLATFORM_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Kafka    configs.Kafka    `envPrefix:"KAFKA_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe default in prod.
func (c Config) Validate() error {
	return c.Auth.Validate(c.Dev())
}

// Dev reports whether development-only features may be enabled.
func (c Config) Dev() bool {
	return c.Env != "prod"
}
