package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the env file at path (missing file is not an error), applies
// environment variable overrides on top of the built-in defaults, and returns
// the final Settings. Unparsable numeric variables are a hard error: a typo'd
// TIMEOUT should stop the run before any browser is launched. The returned
// Settings has NOT been validated; the caller should invoke Validate after
// Load.
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		// Missing env files are fine; tests commonly run on plain
		// environment variables in CI.
		_ = godotenv.Load(envFile)
	}

	s := Defaults()

	getStr(&s.BaseURL, "BASE_URL")
	getStr(&s.APIURL, "API_URL")
	getStr(&s.ReportDir, "REPORT_DIR")
	getStr(&s.ScreenshotDir, "SCREENSHOT_DIR")
	getStr(&s.LogLevel, "LOG_LEVEL")

	// Headed mode is opted into with the literal string "false"; every
	// other non-empty value keeps the browser headless.
	if v := os.Getenv("HEADLESS"); v != "" {
		s.Headless = v != "false"
	}

	if err := getMillis(&s.SlowMo, "SLOW_MO"); err != nil {
		return nil, err
	}
	if err := getMillis(&s.Timeout, "TIMEOUT"); err != nil {
		return nil, err
	}
	if err := getInt(&s.ViewportWidth, "VIEWPORT_WIDTH"); err != nil {
		return nil, err
	}
	if err := getInt(&s.ViewportHeight, "VIEWPORT_HEIGHT"); err != nil {
		return nil, err
	}

	return &s, nil
}

// getStr overwrites dst when the variable is set and non-empty.
func getStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// getInt overwrites dst when the variable is set; a non-integer value is an
// error rather than a silent skip.
func getInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, v)
	}
	*dst = n
	return nil
}

// getMillis reads an integer millisecond count into a duration.
func getMillis(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer millisecond count", key, v)
	}
	*dst = time.Duration(n) * time.Millisecond
	return nil
}
