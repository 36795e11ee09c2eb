package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "http://localhost:8081/", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Store.LatestDetailOnly)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("API_BASE_URL", "https://catalog.example.com/api/")
	t.Setenv("API_TIMEOUT", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DETAIL_LATEST_ONLY", "TRUE")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://catalog.example.com/api/", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Store.LatestDetailOnly)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("API_BASE_URL", "not a url")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("API_BASE_URL", "http://localhost:8081/")
	t.Setenv("SERVER_PORT", "eighty")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidateProductionRequiresHTTPS(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("API_BASE_URL", "http://catalog.example.com/")

	_, err := Load()
	assert.ErrorContains(t, err, "https")
}

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()
	cfg := LogConfig{Level: "warn", Format: "json"}

	require.NoError(t, cfg.ConfigureLogger(logger))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	bad := LogConfig{Level: "loud"}
	assert.Error(t, bad.ConfigureLogger(logger))
}

func TestServerAddrUsesHost(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: "9090"}
	assert.Equal(t, "127.0.0.1:9090", s.Addr())

	s.Host = "::1"
	assert.Equal(t, "[::1]:9090", s.Addr())
}
