package config

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	return DefaultConfig()
}

func TestValidate_defaults(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_fields(t *testing.T) {
	negative := -time.Second

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.Alerts.DefaultTimeout = &negative },
			wantField: "alerts.default_timeout",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "solarized" },
			wantField: "theme",
		},
		{
			name:      "empty addr",
			mutate:    func(c *Config) { c.Server.Addr = "" },
			wantField: "server.addr",
		},
		{
			name:      "negative shutdown timeout",
			mutate:    func(c *Config) { c.Server.ShutdownTimeout = -time.Second },
			wantField: "server.shutdown_timeout",
		},
		{
			name:      "zero max length",
			mutate:    func(c *Config) { c.Posts.MaxLength = 0 },
			wantField: "posts.max_length",
		},
		{
			name: "bad foreground",
			mutate: func(c *Config) {
				c.Styles = map[string]StyleConfig{"danger": {Foreground: "red"}}
			},
			wantField: `styles["danger"].foreground`,
		},
		{
			name: "ansi out of range",
			mutate: func(c *Config) {
				c.Styles = map[string]StyleConfig{"info": {Background: "256"}}
			},
			wantField: `styles["info"].background`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestValidate_collects_all_errors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.Addr = ""
	cfg.Posts.MaxLength = -1

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"", true},
		{"#fff", true},
		{"#DC3545", true},
		{"0", true},
		{"255", true},
		{"256", false},
		{"-1", false},
		{"#12345", false},
		{"blue", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validColor(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
