package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.False(t, c.InsecureSkipVerify)
	assert.NotEmpty(t, c.APIBaseURL)
	assert.Empty(t, c.AppName, "identity fields must not have defaults")
	assert.Empty(t, c.Secret)
	assert.Empty(t, c.Version)
}

func TestValidate(t *testing.T) {
	valid := Config{
		AppName:        "example",
		Secret:         "example",
		Version:        "1.0",
		APIBaseURL:     "https://store.example.com",
		RequestTimeout: 10 * time.Second,
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		expectErr bool
	}{
		{name: "complete config", mutate: func(c *Config) {}, expectErr: false},
		{name: "missing app name", mutate: func(c *Config) { c.AppName = "" }, expectErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.Secret = "" }, expectErr: true},
		{name: "missing version", mutate: func(c *Config) { c.Version = "" }, expectErr: true},
		{name: "missing base url", mutate: func(c *Config) { c.APIBaseURL = "" }, expectErr: true},
		{name: "base url is not a url", mutate: func(c *Config) { c.APIBaseURL = "not-a-url" }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TENZO_APP_NAME", "envapp")
	t.Setenv("TENZO_SECRET", "envsecret")
	t.Setenv("TENZO_VERSION", "2.0")
	t.Setenv("TENZO_REQUEST_TIMEOUT", "30s")
	t.Setenv("TENZO_INSECURE_SKIP_VERIFY", "true")

	c := Config{}
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "envapp", c.AppName)
	assert.Equal(t, "envsecret", c.Secret)
	assert.Equal(t, "2.0", c.Version)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.True(t, c.InsecureSkipVerify)
}

func TestParseEnv_LeavesUnsetFieldsAlone(t *testing.T) {
	t.Setenv("TENZO_APP_NAME", "envapp")

	c := Config{}
	c.LoadDefaults()
	c.Secret = "fromjson"
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "envapp", c.AppName)
	assert.Equal(t, "fromjson", c.Secret, "unset env var must not clobber earlier value")
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "Test1 OK",
			args: []string{"cmd", "-n", "flagapp", "-s", "flagsecret", "-v", "3.1", "-t", "20"},
			expected: &Config{
				AppName: "flagapp", Secret: "flagsecret", Version: "3.1",
				RequestTimeout: 20 * time.Second,
			},
		},
		{
			name:        "Test2 incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
