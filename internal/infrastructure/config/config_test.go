package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"IMPORTER_APP_NAME":          os.Getenv("IMPORTER_APP_NAME"),
		"IMPORTER_APP_ENV":           os.Getenv("IMPORTER_APP_ENV"),
		"IMPORTER_LOG_LEVEL":         os.Getenv("IMPORTER_LOG_LEVEL"),
		"IMPORTER_LOG_FORMAT":        os.Getenv("IMPORTER_LOG_FORMAT"),
		"IMPORTER_CATALOG_ENDPOINT":  os.Getenv("IMPORTER_CATALOG_ENDPOINT"),
		"IMPORTER_CATALOG_TIMEOUT":   os.Getenv("IMPORTER_CATALOG_TIMEOUT"),
		"IMPORTER_BACKEND_BASE_URL":  os.Getenv("IMPORTER_BACKEND_BASE_URL"),
		"IMPORTER_BACKEND_API_TOKEN": os.Getenv("IMPORTER_BACKEND_API_TOKEN"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "catalog-importer", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.Equal(t, "https://dummyjson.com/products?limit=100", cfg.Catalog.Endpoint)
		assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, "http://localhost:9000", cfg.Backend.BaseURL)
		assert.Equal(t, "", cfg.Backend.APIToken)
		assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	})

	t.Run("loads values from environment variables with IMPORTER prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("IMPORTER_APP_NAME", "test-importer")
		os.Setenv("IMPORTER_LOG_LEVEL", "debug")
		os.Setenv("IMPORTER_LOG_FORMAT", "json")
		os.Setenv("IMPORTER_CATALOG_ENDPOINT", "https://catalog.test/products")
		os.Setenv("IMPORTER_CATALOG_TIMEOUT", "10s")
		os.Setenv("IMPORTER_BACKEND_BASE_URL", "https://backend.test")
		os.Setenv("IMPORTER_BACKEND_API_TOKEN", "secret-token")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-importer", cfg.App.Name)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "https://catalog.test/products", cfg.Catalog.Endpoint)
		assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, "https://backend.test", cfg.Backend.BaseURL)
		assert.Equal(t, "secret-token", cfg.Backend.APIToken)
	})

	t.Run("rejects invalid catalog endpoint", func(t *testing.T) {
		clearEnv()
		os.Setenv("IMPORTER_CATALOG_ENDPOINT", "not a url")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.endpoint")
	})

	t.Run("rejects trailing slash on backend base URL", func(t *testing.T) {
		clearEnv()
		os.Setenv("IMPORTER_BACKEND_BASE_URL", "http://localhost:9000/")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trailing slash")
	})

	t.Run("requires backend.api_token in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("IMPORTER_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend.api_token is required in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("IMPORTER_APP_ENV", "production")
		os.Setenv("IMPORTER_BACKEND_API_TOKEN", "secret-token")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}
