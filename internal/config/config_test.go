package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"BASE_URL", "API_URL", "HEADLESS", "SLOW_MO", "TIMEOUT",
		"VIEWPORT_WIDTH", "VIEWPORT_HEIGHT", "REPORT_DIR", "SCREENSHOT_DIR", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5173", s.BaseURL)
	assert.Equal(t, "http://localhost:5001/api", s.APIURL)
	assert.True(t, s.Headless)
	assert.Equal(t, time.Duration(0), s.SlowMo)
	assert.Equal(t, 30*time.Second, s.Timeout)
	assert.Equal(t, 1920, s.ViewportWidth)
	assert.Equal(t, 1080, s.ViewportHeight)
	assert.Equal(t, "reports", s.ReportDir)
	assert.Equal(t, "reports/screenshots", s.ScreenshotDir)
	require.NoError(t, s.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://staging.example.com")
	t.Setenv("TIMEOUT", "5000")
	t.Setenv("SLOW_MO", "250")
	t.Setenv("VIEWPORT_WIDTH", "1280")
	t.Setenv("VIEWPORT_HEIGHT", "720")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", s.BaseURL)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, 250*time.Millisecond, s.SlowMo)
	assert.Equal(t, 1280, s.ViewportWidth)
	assert.Equal(t, 720, s.ViewportHeight)
	assert.Equal(t, float64(5000), s.TimeoutMillis())
	assert.Equal(t, float64(250), s.SlowMoMillis())
}

func TestLoadHeadlessQuirk(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "false", want: false},
		{value: "true", want: true},
		{value: "0", want: true}, // only the literal "false" disables headless
		{value: "", want: true},
	}

	for _, tt := range tests {
		t.Run("HEADLESS="+tt.value, func(t *testing.T) {
			t.Setenv("HEADLESS", tt.value)
			s, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Headless)
		})
	}
}

func TestLoadRejectsUnparsableNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "TIMEOUT", value: "thirty seconds"},
		{key: "SLOW_MO", value: "fast"},
		{key: "VIEWPORT_WIDTH", value: "wide"},
		{key: "VIEWPORT_HEIGHT", value: "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestDerivedURLs(t *testing.T) {
	s := Defaults()
	s.BaseURL = "http://localhost:5173"

	assert.Equal(t, "http://localhost:5173/login", s.LoginURL())
	assert.Equal(t, "http://localhost:5173/dashboard", s.DashboardURL())
	assert.Equal(t, "http://localhost:5173/trading", s.TradingURL())
	assert.Equal(t, "http://localhost:5173/portfolio", s.PortfolioURL())
	assert.Equal(t, "http://localhost:5173/watchlists", s.WatchlistsURL())
	assert.Equal(t, "http://localhost:5173/trades", s.TradesURL())
	assert.Equal(t, "http://localhost:5173/register", s.RegisterURL())
	assert.Len(t, s.ProtectedURLs(), 5)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	s := Defaults()
	s.BaseURL = "not a url"
	s.Timeout = 0
	s.ViewportWidth = -1
	s.LogLevel = "loud"

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BASE_URL")
	assert.Contains(t, err.Error(), "TIMEOUT")
	assert.Contains(t, err.Error(), "viewport")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestTestData(t *testing.T) {
	users := AllUsers()
	require.Len(t, users, 3)
	assert.Equal(t, PrimaryUser, users[0])
	assert.Equal(t, "john@example.com", users[0].Email)
	assert.Equal(t, "jane@example.com", users[1].Email)
	assert.Equal(t, "bob@example.com", users[2].Email)

	invalid := InvalidUser()
	assert.Equal(t, "invalid@example.com", invalid.Email)

	assert.Contains(t, StockSymbols, "AAPL")
	assert.Len(t, StockSymbols, 7)
	assert.Greater(t, DefaultTradeQuantity, SmallTradeQuantity)
	assert.Greater(t, LargeTradeQuantity, DefaultTradeQuantity)
}
