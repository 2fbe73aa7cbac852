package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"go-writing-services/pkg/validation"
)

// Theme persistence policies
const (
	ThemePolicyReset  = "reset"
	ThemePolicyCookie = "cookie"
)

// KnownServices are the service slugs MOCK_SERVICES may name.
var KnownServices = []string{
	"spelling-check",
	"writing-enhancement",
	"addition-of-connectors",
	"textual-tone-shifts",
	"plagiarism-check",
}

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	MaxRequestBodySize int64

	APIBaseURL   string
	APIKey       string
	MockServices []string
	MockDelay    time.Duration

	ThemePolicy   string
	SessionTTL    time.Duration
	HistoryDBPath string
	LogLevel      string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// MocksAll reports whether no remote API is configured.
func (c *Config) MocksAll() bool {
	return c.APIBaseURL == ""
}

// IsMocked reports whether submissions to slug are served from fixtures.
func (c *Config) IsMocked(slug string) bool {
	if c.MocksAll() {
		return true
	}
	for _, s := range c.MockServices {
		if s == slug {
			return true
		}
	}
	return false
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("MAX_REQUEST_BODY_SIZE", 1024*1024) // 1MB
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("MOCK_SERVICES", "writing-enhancement")
	v.SetDefault("MOCK_DELAY", "2s")
	v.SetDefault("THEME_POLICY", ThemePolicyReset)
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("HISTORY_DB_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadFromEnv reads configuration from the environment only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Load reads configuration from the environment and, when configFile is
// set, from that file. Environment variables win over file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", configFile, err)
		}
	}

	return FromViper(v)
}

// FromViper builds and validates a Config from already populated settings.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:               strings.TrimSpace(v.GetString("HOST")),
		Port:               strings.TrimSpace(v.GetString("PORT")),
		RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		MaxRequestBodySize: v.GetInt64("MAX_REQUEST_BODY_SIZE"),
		APIBaseURL:         strings.TrimSpace(v.GetString("API_BASE_URL")),
		APIKey:             v.GetString("API_KEY"),
		MockServices:       splitList(v.GetString("MOCK_SERVICES")),
		MockDelay:          v.GetDuration("MOCK_DELAY"),
		ThemePolicy:        strings.ToLower(strings.TrimSpace(v.GetString("THEME_POLICY"))),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		HistoryDBPath:      strings.TrimSpace(v.GetString("HISTORY_DB_PATH")),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations and normalizes APIBaseURL.
func (c *Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}
	if c.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", c.MaxRequestBodySize)
	}
	if c.RequestTimeout <= 0 || c.SessionTTL <= 0 {
		return fmt.Errorf("timeouts must be > 0 (got request=%s, session=%s)", c.RequestTimeout, c.SessionTTL)
	}
	if c.MockDelay < 0 {
		return fmt.Errorf("MOCK_DELAY must be >= 0 (got %s)", c.MockDelay)
	}
	if c.APIBaseURL != "" {
		base, err := validation.NormalizeBaseURL(c.APIBaseURL)
		if err != nil {
			return fmt.Errorf("invalid API_BASE_URL: %w", err)
		}
		c.APIBaseURL = base
	}
	switch c.ThemePolicy {
	case ThemePolicyReset, ThemePolicyCookie:
	default:
		return fmt.Errorf("invalid THEME_POLICY: %q (want %q or %q)", c.ThemePolicy, ThemePolicyReset, ThemePolicyCookie)
	}
	for _, s := range c.MockServices {
		if !isKnownService(s) {
			return fmt.Errorf("MOCK_SERVICES: unknown service %q", s)
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

func isKnownService(slug string) bool {
	for _, s := range KnownServices {
		if s == slug {
			return true
		}
	}
	return false
}
