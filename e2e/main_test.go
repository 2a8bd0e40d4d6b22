//go:build e2e

// Package e2e drives the trading application through a real browser.
// It expects a running instance of the application and a browser installed
// via the e2esetup command:
//
//	go run ./cmd/e2esetup -install
//	go test -tags e2e ./e2e
//
// Subsets run through the standard -run flag, for example
// "go test -tags e2e ./e2e -run TestLogin" exercises the login form without
// ever preparing the shared authentication state.
package e2e

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/papertrade/tradesim-e2e/internal/config"
	"github.com/papertrade/tradesim-e2e/internal/pages"
	"github.com/papertrade/tradesim-e2e/internal/session"
)

var (
	envFile     = flag.String("env", ".env.test", "environment file with suite settings")
	locatorFile = flag.String("locators", "", "optional TOML file overriding default selectors")

	cfg  *config.Settings
	sess *session.Session
	plan = &session.Plan{}
)

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(run(m))
}

func run(m *testing.M) int {
	var err error
	cfg, err = config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load settings:", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	locs, err := pages.LoadLocators(*locatorFile)
	if err != nil {
		log.Error("load locators", slog.String("error", err.Error()))
		return 1
	}

	sess, err = session.New(cfg, locs, log)
	if err != nil {
		log.Error("start session", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn("session shutdown", slog.String("error", err.Error()))
		}
	}()

	// Sign in once up front when any selected test needs it. Login-form
	// tests run against a clean session and skip this entirely.
	if plan.NeedsAuth(runExpr()) {
		if _, err := sess.EnsureStorageState(); err != nil {
			log.Error("prepare authentication state", slog.String("error", err.Error()))
			return 1
		}
	}

	return m.Run()
}

func runExpr() string {
	if f := flag.Lookup("test.run"); f != nil {
		return f.Value.String()
	}
	return ""
}

// page opens a clean page for the calling test, honoring its plan tags.
func page(t *testing.T) *pages.Base {
	t.Helper()
	return sess.Page(t, plan.Tags(t.Name())...)
}

// authenticatedPage opens a page already signed in as the primary user.
func authenticatedPage(t *testing.T) *pages.Base {
	t.Helper()
	return sess.AuthenticatedPage(t, plan.Tags(t.Name())...)
}
