package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Port:      "5113",
		JWTSecret: strings.Repeat("s", 32),
		Env:       "test",
	}
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	require.NoError(t, validTestConfig().Validate())
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWTSecret = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWTSecret = "short"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32")
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := validTestConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRequiresStrongDBPassword(t *testing.T) {
	cfg := validTestConfig()
	cfg.Env = "production"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "ak3opr8a-strong-one"
	assert.NoError(t, cfg.Validate())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
}
