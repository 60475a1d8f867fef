// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the server.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DataFile is the path of the JSON document the record store persists to.
	DataFile string `env:"DATA_FILE" envDefault:"user_data.json"`

	// JWTSecret signs identity tokens. An empty secret still works but
	// makes tokens forgeable; main logs a warning.
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiration is the identity token lifetime.
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
