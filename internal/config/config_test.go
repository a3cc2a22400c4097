package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:  "a-very-long-secret-value-for-testing-only!",
		Port:       "8080",
		DBPassword: "s3cure-pass",
		DBSSLMode:  "require",
		Env:        "development",
	}
}

func TestValidate_Development(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRejectsDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Env = "production"
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Env = "production"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionAcceptsStrongValues(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	require.NoError(t, cfg.Validate())
}
