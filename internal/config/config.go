package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the TenzoAuth CLI.
//
// Fields:
//   - AppName/Secret/Version: the application identity presented to the
//     remote store. All three are required; the engine refuses to start
//     without them.
//   - APIBaseURL: base URL of the remote document store.
//   - RequestTimeout: per-call deadline for remote requests.
//   - InsecureSkipVerify: disables TLS certificate verification. Off by
//     default; only for stores with self-signed certificates.
type Config struct {
	AppName            string        `validate:"required"`
	Secret             string        `validate:"required"`
	Version            string        `validate:"required"`
	APIBaseURL         string        `validate:"required,url"`
	RequestTimeout     time.Duration `validate:"required"`
	InsecureSkipVerify bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://project-bd-69803-default-rtdb.asia-southeast1.firebasedatabase.app"
	c.RequestTimeout = 10 * time.Second
	c.InsecureSkipVerify = false
}

// Validate checks that the required identity fields are present. A non-nil
// error means the configuration is unusable and the caller must not proceed.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
