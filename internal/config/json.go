package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tenzodev/tenzoauth/internal/flagx"
	"github.com/tenzodev/tenzoauth/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JSONConfig struct {
	AppName            *string         `json:"app_name"`
	Secret             *string         `json:"secret"`
	Version            *string         `json:"version"`
	APIBaseURL         *string         `json:"api_base_url"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	InsecureSkipVerify *bool           `json:"insecure_skip_verify"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JSONConfigPath);
// when neither is given, no JSON is loaded. Only fields present in the file
// override the current values. Panics on read or unmarshal errors.
//
// Intended usage is: defaults -> parseJSON -> parseEnv -> parseFlags, where
// later stages override earlier ones.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AppName != nil {
		cfg.AppName = *jc.AppName
	}
	if jc.Secret != nil {
		cfg.Secret = *jc.Secret
	}
	if jc.Version != nil {
		cfg.Version = *jc.Version
	}
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.InsecureSkipVerify != nil {
		cfg.InsecureSkipVerify = *jc.InsecureSkipVerify
	}
}
