package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *Config {
	return &Config{
		Port:       "3000",
		JWTSecret:  strings.Repeat("s", 32),
		DBPassword: "a-strong-password",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestValidate_Development(t *testing.T) {
	cfg := &Config{
		Port:      "3000",
		JWTSecret: "your-secret-key-change-in-production",
		Env:       "development",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := &Config{JWTSecret: "secret"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: "3000"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_Production(t *testing.T) {
	assert.NoError(t, validProductionConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default JWT secret", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }},
		{"short JWT secret", func(c *Config) { c.JWTSecret = "short" }},
		{"default DB password", func(c *Config) { c.DBPassword = "password" }},
		{"empty DB password", func(c *Config) { c.DBPassword = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
