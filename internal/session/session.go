// Package session owns the browser shared by a test run and hands out
// per-test pages. It also prepares the pre-authenticated storage state that
// lets most tests skip the login form.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/tradesim-e2e/internal/config"
	"github.com/papertrade/tradesim-e2e/internal/pages"
)

// Session launches one browser for the whole run. Contexts and pages are
// per-test and cleaned up through t.Cleanup; the browser and the stored
// authentication state live for the life of the session.
type Session struct {
	cfg     *config.Settings
	locs    pages.Locators
	log     *slog.Logger
	pw      *playwright.Playwright
	browser playwright.Browser

	stateOnce sync.Once
	stateErr  error
	stateDir  string
	statePath string
}

// New starts the driver and launches chromium with the configured headless
// and slow-motion settings.
func New(cfg *config.Settings, locs pages.Locators, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start driver: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMillis()),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	log.Info("browser launched",
		slog.Bool("headless", cfg.Headless),
		slog.String("base_url", cfg.BaseURL))
	return &Session{cfg: cfg, locs: locs, log: log, pw: pw, browser: browser}, nil
}

// Close shuts the browser down, stops the driver, and removes the storage
// state directory. Safe to call once at the end of the run.
func (s *Session) Close() error {
	var errs []error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop driver: %w", err))
		}
	}
	if s.stateDir != "" {
		if err := os.RemoveAll(s.stateDir); err != nil {
			errs = append(errs, fmt.Errorf("remove state dir: %w", err))
		}
	}
	return errors.Join(errs...)
}

// StorageStatePath returns the saved state file, or "" when none was made.
func (s *Session) StorageStatePath() string { return s.statePath }

// EnsureStorageState signs in once as the primary user and saves the
// resulting cookies and localStorage to a state file. Every later call
// returns the same path. Callers that know no selected test needs
// authentication should simply not call it.
func (s *Session) EnsureStorageState() (string, error) {
	s.stateOnce.Do(func() {
		s.stateErr = s.createStorageState()
	})
	if s.stateErr != nil {
		return "", s.stateErr
	}
	return s.statePath, nil
}

func (s *Session) createStorageState() error {
	dir, err := os.MkdirTemp("", "tradesim-e2e-state-")
	if err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	s.stateDir = dir
	path := filepath.Join(dir, uuid.NewString()+".json")

	ctx, err := s.newContext(false)
	if err != nil {
		return fmt.Errorf("auth context: %w", err)
	}
	defer func() { _ = ctx.Close() }()

	pg, err := ctx.NewPage()
	if err != nil {
		return fmt.Errorf("auth page: %w", err)
	}
	pg.SetDefaultTimeout(s.cfg.TimeoutMillis())

	base := pages.NewBase(pg, s.cfg, s.locs, s.log)
	login := pages.NewLogin(base)
	if err := login.Navigate(); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}
	if err := login.Login(config.PrimaryUser, true); err != nil {
		return fmt.Errorf("sign in %s: %w", config.PrimaryUser.Email, err)
	}
	if _, err := ctx.StorageState(path); err != nil {
		return fmt.Errorf("save storage state: %w", err)
	}
	s.statePath = path
	s.log.Info("storage state prepared",
		slog.String("path", path),
		slog.String("user", config.PrimaryUser.Email))
	return nil
}

// newContext opens a browser context with the configured base URL and
// viewport, loading the saved authentication state when asked and available.
func (s *Session) newContext(withState bool) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(s.cfg.BaseURL),
		Viewport: &playwright.Size{
			Width:  s.cfg.ViewportWidth,
			Height: s.cfg.ViewportHeight,
		},
	}
	if withState && s.statePath != "" {
		opts.StorageStatePath = playwright.String(s.statePath)
	}
	return s.browser.NewContext(opts)
}

// Page opens a fresh page for a test and registers cleanup on t. Tags drive
// fixture policy: login-tagged tests get a context without stored
// authentication state so the form is actually exercised, and tests not
// tagged trading get their cookies cleared up front so one test's session
// never leaks into the next.
func (s *Session) Page(t *testing.T, tags ...Tag) *pages.Base {
	t.Helper()

	ctx, err := s.newContext(!hasTag(tags, TagLogin))
	require.NoError(t, err, "new browser context")
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			s.log.Debug("context close failed", slog.String("error", err.Error()))
		}
	})

	if !hasTag(tags, TagTrading) {
		require.NoError(t, ctx.ClearCookies(), "clear cookies")
	}

	pg, err := ctx.NewPage()
	require.NoError(t, err, "new page")
	pg.SetDefaultTimeout(s.cfg.TimeoutMillis())

	base := pages.NewBase(pg, s.cfg, s.locs, s.log)

	// Capture the final screen of a failed test before the context closes.
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		name := strings.ReplaceAll(t.Name(), "/", "_")
		path, err := base.TakeScreenshot(name, true)
		if err != nil {
			s.log.Debug("failure screenshot failed", slog.String("error", err.Error()))
			return
		}
		s.log.Info("failure screenshot captured",
			slog.String("test", t.Name()),
			slog.String("path", path))
	})

	return base
}

// AuthenticatedPage opens a page that is already signed in as the primary
// user, preparing the shared storage state first if needed. If the stored
// state does not carry over (expired token, cleared cookies) it falls back
// to signing in through the form. Teardown logs out on a best-effort basis;
// a failed logout never fails the test.
func (s *Session) AuthenticatedPage(t *testing.T, tags ...Tag) *pages.Base {
	t.Helper()

	_, err := s.EnsureStorageState()
	require.NoError(t, err, "prepare authentication state")

	base := s.Page(t, tags...)
	require.NoError(t, base.Goto(s.cfg.BaseURL), "open application")

	if strings.Contains(base.CurrentURL(), "/login") {
		require.NoError(t, pages.NewLogin(base).Login(config.PrimaryUser, true), "fallback sign-in")
	}

	t.Cleanup(func() {
		if err := pages.NewDashboard(base).Logout(); err != nil {
			s.log.Debug("teardown logout failed",
				slog.String("test", t.Name()),
				slog.String("error", err.Error()))
		}
	})
	return base
}

func hasTag(tags []Tag, want Tag) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
