package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix is prepended to every environment variable name.
const Prefix = "FIDELIDADE"

// Config holds the configuration for the API client.
// Environment variables are automatically parsed from the FIDELIDADE_ prefix;
// envconfig also accepts the unprefixed name as a fallback, so API_BASE_URL
// and DEBUG work too.
type Config struct {
	// APIBaseURL is prepended to every relative request path. Empty means
	// requests are issued as relative paths.
	APIBaseURL string `envconfig:"API_BASE_URL" default:""`

	// LoginPath is where an invalid session sends the user.
	LoginPath string `envconfig:"LOGIN_PATH" default:"/login"`

	// HTTPTimeout bounds a single request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Debug enables request/response dumps at debug level.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// SessionPath is the SQLite file holding persisted session state.
	// Empty selects the default under the local state directory.
	SessionPath string `envconfig:"SESSION_PATH" default:""`
}

// Validate normalises and checks the loaded values.
func (c *Config) Validate() error {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0, got %s", c.HTTPTimeout)
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		return fmt.Errorf("LOGIN_PATH must start with '/', got %q", c.LoginPath)
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Example: FIDELIDADE_API_BASE_URL=https://fidelidade-backend.onrender.com/api
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Str("login_path", cfg.LoginPath).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Str("session_path", cfg.SessionPath).
		Msg("Configuration loaded")

	return &cfg, nil
}
