// Package config defines the test-run settings for the trading application
// suite and the canned data the tests consume.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// Settings holds the process-wide test configuration. It is built once from
// the environment at startup and read-only afterward; components receive it
// by pointer instead of reaching for a global.
type Settings struct {
	// URLs
	BaseURL string
	APIURL  string

	// Browser settings
	Headless bool
	SlowMo   time.Duration
	Timeout  time.Duration

	// Viewport settings
	ViewportWidth  int
	ViewportHeight int

	// Report settings
	ReportDir     string
	ScreenshotDir string

	LogLevel string
}

// Defaults returns a Settings populated with the documented default values.
func Defaults() Settings {
	return Settings{
		BaseURL:        "http://localhost:5173",
		APIURL:         "http://localhost:5001/api",
		Headless:       true,
		SlowMo:         0,
		Timeout:        30 * time.Second,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		ReportDir:      "reports",
		ScreenshotDir:  "reports/screenshots",
		LogLevel:       "info",
	}
}

// TimeoutMillis returns the default operation timeout in milliseconds, the
// unit the browser driver speaks.
func (s *Settings) TimeoutMillis() float64 {
	return float64(s.Timeout.Milliseconds())
}

// SlowMoMillis returns the per-action slowdown in milliseconds.
func (s *Settings) SlowMoMillis() float64 {
	return float64(s.SlowMo.Milliseconds())
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Page URLs are derived from BaseURL with fixed path suffixes.

func (s *Settings) LoginURL() string      { return s.BaseURL + "/login" }
func (s *Settings) DashboardURL() string  { return s.BaseURL + "/dashboard" }
func (s *Settings) TradingURL() string    { return s.BaseURL + "/trading" }
func (s *Settings) PortfolioURL() string  { return s.BaseURL + "/portfolio" }
func (s *Settings) WatchlistsURL() string { return s.BaseURL + "/watchlists" }
func (s *Settings) TradesURL() string     { return s.BaseURL + "/trades" }
func (s *Settings) RegisterURL() string   { return s.BaseURL + "/register" }

// ProtectedURLs lists every route that requires authentication.
func (s *Settings) ProtectedURLs() []string {
	return []string{
		s.DashboardURL(),
		s.TradingURL(),
		s.PortfolioURL(),
		s.TradesURL(),
		s.WatchlistsURL(),
	}
}

// validLogLevels enumerates the accepted values for Settings.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Settings for obviously invalid or missing values and
// returns a combined error describing every problem found.
func (s *Settings) Validate() error {
	var errs []string

	if s.BaseURL == "" {
		errs = append(errs, "BASE_URL must not be empty")
	} else if u, err := url.Parse(s.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("BASE_URL %q is not an absolute URL", s.BaseURL))
	}
	if s.APIURL == "" {
		errs = append(errs, "API_URL must not be empty")
	}
	if s.Timeout <= 0 {
		errs = append(errs, "TIMEOUT must be positive")
	}
	if s.SlowMo < 0 {
		errs = append(errs, "SLOW_MO must not be negative")
	}
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		errs = append(errs, fmt.Sprintf("viewport must be positive, got %dx%d", s.ViewportWidth, s.ViewportHeight))
	}
	if s.ReportDir == "" {
		errs = append(errs, "REPORT_DIR must not be empty")
	}
	if s.ScreenshotDir == "" {
		errs = append(errs, "SCREENSHOT_DIR must not be empty")
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown LOG_LEVEL %q (valid: debug, info, warn, error)", s.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("settings validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
