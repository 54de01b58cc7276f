// Package config loads runtime configuration for the TenzoAuth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Environment variables with the TENZO_ prefix (see parseEnv); a .env
//     file in the working directory is loaded first when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-n string   application name
//	-s string   application secret
//	-v string   application version
//	-u string   base URL of the remote store
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "app_name": "example",
//	  "secret": "example",
//	  "version": "1.0",
//	  "api_base_url": "https://store.example.com",
//	  "request_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config: identity and transport settings
//   - func LoadConfig() (*Config, error): builds and validates the Config
//   - func (*Config) LoadDefaults(): sets sensible defaults
//   - func (*Config) Validate(): rejects configs missing the identity triple
//
// The application name, secret, and version have no defaults on purpose: a
// missing identity is a fatal configuration error, not something to guess.
package config
