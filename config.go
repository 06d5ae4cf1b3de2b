package biztrack

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Version is the SDK release, reported in the default User-Agent.
const Version = "0.4.0"

// Environment keys read by ConfigFromEnv.
const (
	EnvBaseURL     = "BIZTRACK_API_BASE_URL"
	EnvHTTPTimeout = "BIZTRACK_HTTP_TIMEOUT"
	EnvUserAgent   = "BIZTRACK_USER_AGENT"
	EnvLogLevel    = "BIZTRACK_LOG_LEVEL"
)

// Config holds everything the SDK needs to talk to one backend.
type Config struct {
	// BaseURL is the backend API root, including the /api path segment,
	// e.g. "https://biztrack.example.com/api".
	BaseURL string

	// HTTPTimeout is applied to the default http.Client. Ignored when the
	// builder injects its own client. Zero means no timeout.
	HTTPTimeout time.Duration

	// UserAgent overrides the default "biztrack-go/<version>".
	UserAgent string

	// LogLevel is a zerolog level name ("debug", "info", ...). Only
	// consulted by ConfigFromEnv consumers that build their own logger.
	LogLevel string
}

func defaultConfig() Config {
	return Config{
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "biztrack-go/" + Version,
		LogLevel:    zerolog.LevelInfoValue,
	}
}

// Validate checks the config for contradictions before Build wires
// anything.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("biztrack: invalid base URL %q", c.BaseURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("biztrack: negative HTTP timeout %v", c.HTTPTimeout)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("biztrack: invalid log level %q", c.LogLevel)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from the environment, loading a .env file
// from the working directory first when one exists. Unset keys keep their
// defaults.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("biztrack: parse %s: %w", EnvHTTPTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}
