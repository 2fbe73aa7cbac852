package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(1024*1024), cfg.MaxRequestBodySize)
	assert.Equal(t, 2*time.Second, cfg.MockDelay)
	assert.Equal(t, []string{"writing-enhancement"}, cfg.MockServices)
	assert.Equal(t, ThemePolicyReset, cfg.ThemePolicy)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.HistoryDBPath)
	assert.True(t, cfg.MocksAll())
	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://api.example.com/v1/")
	t.Setenv("API_KEY", "secret")
	t.Setenv("MOCK_SERVICES", "Writing-Enhancement, textual-tone-shifts")
	t.Setenv("THEME_POLICY", "COOKIE")
	t.Setenv("MOCK_DELAY", "0s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, ThemePolicyCookie, cfg.ThemePolicy)
	assert.Equal(t, time.Duration(0), cfg.MockDelay)
	assert.False(t, cfg.MocksAll())
	assert.True(t, cfg.IsMocked("writing-enhancement"))
	assert.True(t, cfg.IsMocked("textual-tone-shifts"))
	assert.False(t, cfg.IsMocked("spelling-check"))
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not numeric", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"body size", "MAX_REQUEST_BODY_SIZE", "0"},
		{"request timeout", "REQUEST_TIMEOUT", "-1s"},
		{"base url scheme", "API_BASE_URL", "ftp://api.example.com"},
		{"base url query", "API_BASE_URL", "https://api.example.com/v1?key=abc"},
		{"theme policy", "THEME_POLICY", "sticky"},
		{"unknown mock service", "MOCK_SERVICES", "grammar-check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: \"7070\"\nTHEME_POLICY: cookie\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, ThemePolicyCookie, cfg.ThemePolicy)

	t.Setenv("PORT", "6060")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Port)
}

func TestValidate_NormalizesBaseURL(t *testing.T) {
	cfg := &Config{
		Port:               "8080",
		RequestTimeout:     time.Second,
		MaxRequestBodySize: 1,
		SessionTTL:         time.Minute,
		ThemePolicy:        ThemePolicyReset,
		APIBaseURL:         "  https://api.example.com/v1//",
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
