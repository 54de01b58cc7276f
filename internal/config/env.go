package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envSpec maps environment variables onto Config fields. Variables use the
// TENZO_ prefix:
//
//	TENZO_APP_NAME
//	TENZO_SECRET
//	TENZO_VERSION
//	TENZO_API_BASE_URL
//	TENZO_REQUEST_TIMEOUT   (duration string, e.g. "10s")
//	TENZO_INSECURE_SKIP_VERIFY
type envSpec struct {
	AppName            *string        `envconfig:"APP_NAME"`
	Secret             *string        `envconfig:"SECRET"`
	Version            *string        `envconfig:"VERSION"`
	APIBaseURL         *string        `envconfig:"API_BASE_URL"`
	RequestTimeout     *time.Duration `envconfig:"REQUEST_TIMEOUT"`
	InsecureSkipVerify *bool          `envconfig:"INSECURE_SKIP_VERIFY"`
}

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, if present; real environment
// variables win over the file.
func parseEnv(cfg *Config) error {
	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load()

	var spec envSpec
	if err := envconfig.Process("TENZO", &spec); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	if spec.AppName != nil {
		cfg.AppName = *spec.AppName
	}
	if spec.Secret != nil {
		cfg.Secret = *spec.Secret
	}
	if spec.Version != nil {
		cfg.Version = *spec.Version
	}
	if spec.APIBaseURL != nil {
		cfg.APIBaseURL = *spec.APIBaseURL
	}
	if spec.RequestTimeout != nil {
		cfg.RequestTimeout = *spec.RequestTimeout
	}
	if spec.InsecureSkipVerify != nil {
		cfg.InsecureSkipVerify = *spec.InsecureSkipVerify
	}
	return nil
}
