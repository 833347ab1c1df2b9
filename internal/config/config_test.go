package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(env string) *Config {
	return &Config{
		Port:       "8080",
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
		Env:        env,
		PageSize:   10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		env         string
		expectError bool
	}{
		{"valid development", func(_ *Config) {}, "development", false},
		{"valid production", func(_ *Config) {}, "production", false},
		{"missing port", func(c *Config) { c.Port = "" }, "development", true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, "development", true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "development", true},
		{"negative page size", func(c *Config) { c.PageSize = -5 }, "development", true},
		{"default jwt secret in production", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, "production", true},
		{"short jwt secret in production", func(c *Config) { c.JWTSecret = "short" }, "production", true},
		{"default jwt secret in development", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, "development", false},
		{"weak db password in production", func(c *Config) { c.DBPassword = "password" }, "prod", true},
		{"weak db password in development", func(c *Config) { c.DBPassword = "password" }, "development", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig(tt.env)
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_SIZE", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.PageSize)
}
