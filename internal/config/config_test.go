package config_test

import (
	"catconnect/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Minute, cfg.Marketplace.OTPTTL)
	require.Equal(t, 5, cfg.Marketplace.OTPMaxAttempts)
	require.Equal(t, uint(20), cfg.Marketplace.DefaultPageSize)
	require.Equal(t, "124.00,14.12,124.45,13.50", cfg.Geocoder.ViewBox)
	require.Equal(t, 1.0, cfg.Geocoder.RequestsPerSecond+cfg.Geocoder.SuggestRequestsPerSecond)
	require.Empty(t, cfg.LLM.APIKey)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
tasks:
  workers: 3
cors:
  allowedOrigins: ["https://catconnect.ph"]
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LLM_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("TASKS_WORKERS", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 7, cfg.Tasks.Workers, "environment overrides yaml")
	require.Equal(t, []string{"https://catconnect.ph"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "from-dotenv", cfg.LLM.APIKey)

	_ = os.Unsetenv("LLM_API_KEY")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load("does-not-exist.yml")
	require.Error(t, err)
}
