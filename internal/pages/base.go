// Package pages wraps each screen of the trading application in a page
// object. Base holds the shared driver handle; page objects hold a Base
// rather than extending anything, so the driver surface stays in one place.
package pages

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/papertrade/tradesim-e2e/internal/config"
	"github.com/papertrade/tradesim-e2e/internal/domain"
)

// pollInterval is the predicate re-check cadence for bounded polls.
const pollInterval = 100 * time.Millisecond

// errorMessageTimeout bounds waits for inline form errors, which render
// straight from the failing request rather than a page load.
const errorMessageTimeout = 5 * time.Second

// Base bundles the driver page with settings, locators, and a logger. All
// page objects delegate to it; nothing above it imports the driver.
type Base struct {
	page   playwright.Page
	cfg    *config.Settings
	locs   Locators
	log    *slog.Logger
	expect playwright.PlaywrightAssertions
}

// NewBase wraps a driver page. The default operation timeout comes from the
// settings and every method accepts an optional override.
func NewBase(page playwright.Page, cfg *config.Settings, locs Locators, log *slog.Logger) *Base {
	if log == nil {
		log = slog.Default()
	}
	return &Base{
		page:   page,
		cfg:    cfg,
		locs:   locs,
		log:    log,
		expect: playwright.NewPlaywrightAssertions(cfg.TimeoutMillis()),
	}
}

// Page exposes the underlying driver page to the session layer only.
func (b *Base) Page() playwright.Page { return b.page }

// Settings returns the settings the base was built with.
func (b *Base) Settings() *config.Settings { return b.cfg }

// millis resolves an optional timeout override to driver milliseconds.
func (b *Base) millis(timeout []time.Duration) float64 {
	if len(timeout) > 0 && timeout[0] > 0 {
		return float64(timeout[0].Milliseconds())
	}
	return b.cfg.TimeoutMillis()
}

// duration resolves an optional timeout override to a time.Duration.
func (b *Base) duration(timeout []time.Duration) time.Duration {
	if len(timeout) > 0 && timeout[0] > 0 {
		return timeout[0]
	}
	return b.cfg.Timeout
}

// classify maps driver failures onto the suite's error taxonomy: a timeout
// on a selector that matches nothing becomes ErrNotFound, any other driver
// timeout becomes ErrTimeout.
func (b *Base) classify(err error, selector string) error {
	if err == nil {
		return nil
	}
	if !isDriverTimeout(err) {
		return err
	}
	if selector != "" {
		if n, cerr := b.page.Locator(selector).Count(); cerr == nil && n == 0 {
			return fmt.Errorf("%w: selector %q matched no elements: %v", domain.ErrNotFound, selector, err)
		}
	}
	return fmt.Errorf("%w: selector %q: %v", domain.ErrTimeout, selector, err)
}

func isDriverTimeout(err error) bool {
	var pwErr *playwright.Error
	if errors.As(err, &pwErr) {
		return pwErr.Name == "TimeoutError"
	}
	return strings.Contains(err.Error(), "Timeout")
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

// Goto navigates to url and waits for the network to go idle, matching how
// the client-rendered app signals readiness.
func (b *Base) Goto(url string, timeout ...time.Duration) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, "")
}

// WaitForURL blocks until the page URL contains fragment.
func (b *Base) WaitForURL(fragment string, timeout ...time.Duration) error {
	pat := regexp.MustCompile(regexp.QuoteMeta(fragment))
	err := b.page.WaitForURL(pat, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, "")
}

// CurrentURL returns the page's current URL.
func (b *Base) CurrentURL() string { return b.page.URL() }

// Reload reloads the page and waits for the network to settle.
func (b *Base) Reload(timeout ...time.Duration) error {
	if _, err := b.page.Reload(playwright.PageReloadOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	}); err != nil {
		return b.classify(err, "")
	}
	return b.WaitForLoadState("networkidle", timeout...)
}

// ---------------------------------------------------------------------------
// Interaction
// ---------------------------------------------------------------------------

// Click clicks the element matching selector once it is actionable.
func (b *Base) Click(selector string, timeout ...time.Duration) error {
	err := b.page.Locator(selector).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, selector)
}

// ClickFirst clicks the first of possibly many elements matching selector.
func (b *Base) ClickFirst(selector string, timeout ...time.Duration) error {
	err := b.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, selector)
}

// ClickNth clicks the n-th (0-based) element matching selector.
func (b *Base) ClickNth(selector string, n int, timeout ...time.Duration) error {
	err := b.page.Locator(selector).Nth(n).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, selector)
}

// Fill replaces the value of the input matching selector.
func (b *Base) Fill(selector, value string, timeout ...time.Duration) error {
	err := b.page.Locator(selector).Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, selector)
}

// GetText returns the text content of the element matching selector.
func (b *Base) GetText(selector string, timeout ...time.Duration) (string, error) {
	text, err := b.page.Locator(selector).TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return "", b.classify(err, selector)
	}
	return text, nil
}

// GetValue returns the current value of the input matching selector.
func (b *Base) GetValue(selector string, timeout ...time.Duration) (string, error) {
	value, err := b.page.Locator(selector).InputValue(playwright.LocatorInputValueOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return "", b.classify(err, selector)
	}
	return value, nil
}

// ---------------------------------------------------------------------------
// Waiting
// ---------------------------------------------------------------------------

// elementStates maps the state names the suite uses to driver states.
var elementStates = map[string]*playwright.WaitForSelectorState{
	"visible":  playwright.WaitForSelectorStateVisible,
	"hidden":   playwright.WaitForSelectorStateHidden,
	"attached": playwright.WaitForSelectorStateAttached,
	"detached": playwright.WaitForSelectorStateDetached,
}

// WaitForElementState blocks until the element matching selector reaches
// state (visible, hidden, attached, detached).
func (b *Base) WaitForElementState(selector, state string, timeout ...time.Duration) error {
	st, ok := elementStates[state]
	if !ok {
		return fmt.Errorf("unknown element state %q", state)
	}
	err := b.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   st,
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, selector)
}

// WaitForTimeout sleeps unconditionally. Prefer PollUntil: fixed delays are
// the suite's main flakiness source and remain only for ad hoc debugging.
func (b *Base) WaitForTimeout(d time.Duration) {
	b.page.WaitForTimeout(float64(d.Milliseconds()))
}

// loadStates maps load-state names to driver states.
var loadStates = map[string]*playwright.LoadState{
	"load":             playwright.LoadStateLoad,
	"domcontentloaded": playwright.LoadStateDomcontentloaded,
	"networkidle":      playwright.LoadStateNetworkidle,
}

// WaitForLoadState blocks until the page reaches the given load state.
func (b *Base) WaitForLoadState(state string, timeout ...time.Duration) error {
	st, ok := loadStates[state]
	if !ok {
		return fmt.Errorf("unknown load state %q", state)
	}
	err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   st,
		Timeout: playwright.Float(b.millis(timeout)),
	})
	return b.classify(err, "")
}

// PollUntil re-checks pred every 100ms until it holds or the budget elapses.
// Prefer it over fixed settle delays around client-side rendering.
func (b *Base) PollUntil(what string, pred func() (bool, error), timeout ...time.Duration) error {
	deadline := time.Now().Add(b.duration(timeout))
	for {
		ok, err := pred()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s did not hold within %s", domain.ErrTimeout, what, b.duration(timeout))
		}
		time.Sleep(pollInterval)
	}
}

// ---------------------------------------------------------------------------
// Querying
// ---------------------------------------------------------------------------

// IsVisible reports whether the element matching selector is visible now; it
// does not wait.
func (b *Base) IsVisible(selector string) (bool, error) {
	return b.page.Locator(selector).IsVisible()
}

// IsEnabled reports whether the element matching selector is enabled.
func (b *Base) IsEnabled(selector string) (bool, error) {
	return b.page.Locator(selector).IsEnabled()
}

// Count returns the number of elements matching selector.
func (b *Base) Count(selector string) (int, error) {
	return b.page.Locator(selector).Count()
}

// ---------------------------------------------------------------------------
// Assertions. Each retries driver-side until the predicate holds or the
// timeout elapses, then reports a descriptive error.
// ---------------------------------------------------------------------------

// ExpectVisible fails if the element never becomes visible within timeout.
func (b *Base) ExpectVisible(selector string, timeout ...time.Duration) error {
	err := b.expect.Locator(b.page.Locator(selector)).ToBeVisible(playwright.LocatorAssertionsToBeVisibleOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("expected %q to be visible: %w", selector, err)
	}
	return nil
}

// ExpectHidden fails if the element never becomes hidden within timeout.
func (b *Base) ExpectHidden(selector string, timeout ...time.Duration) error {
	err := b.expect.Locator(b.page.Locator(selector)).ToBeHidden(playwright.LocatorAssertionsToBeHiddenOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("expected %q to be hidden: %w", selector, err)
	}
	return nil
}

// ExpectContainsText fails if the element's text never contains text.
func (b *Base) ExpectContainsText(selector, text string, timeout ...time.Duration) error {
	err := b.expect.Locator(b.page.Locator(selector)).ToContainText(text, playwright.LocatorAssertionsToContainTextOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("expected %q to contain %q: %w", selector, text, err)
	}
	return nil
}

// ExpectURL fails if the page URL never contains fragment within timeout.
func (b *Base) ExpectURL(fragment string, timeout ...time.Duration) error {
	pat := regexp.MustCompile(regexp.QuoteMeta(fragment))
	err := b.expect.Page(b.page).ToHaveURL(pat, playwright.PageAssertionsToHaveURLOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("expected URL to match %q, got %q: %w", fragment, b.CurrentURL(), err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Screenshots
// ---------------------------------------------------------------------------

// TakeScreenshot captures the viewport (or full page) into the configured
// screenshot directory, creating it if absent, and returns the file path.
func (b *Base) TakeScreenshot(name string, fullPage bool) (string, error) {
	if err := os.MkdirAll(b.cfg.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	path := filepath.Join(b.cfg.ScreenshotDir, name+".png")
	if _, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(fullPage),
	}); err != nil {
		return "", err
	}
	b.log.Debug("screenshot captured", slog.String("path", path))
	return path, nil
}

// ---------------------------------------------------------------------------
// Local storage, executed through the driver's in-page evaluation bridge.
// ---------------------------------------------------------------------------

// GetLocalStorageItem reads key from localStorage; ok is false when the key
// is absent.
func (b *Base) GetLocalStorageItem(key string) (value string, ok bool, err error) {
	result, err := b.page.Evaluate(`key => localStorage.getItem(key)`, key)
	if err != nil {
		return "", false, err
	}
	if result == nil {
		return "", false, nil
	}
	s, isStr := result.(string)
	if !isStr {
		return fmt.Sprint(result), true, nil
	}
	return s, true, nil
}

// SetLocalStorageItem writes key=value into localStorage.
func (b *Base) SetLocalStorageItem(key, value string) error {
	_, err := b.page.Evaluate(`([key, value]) => localStorage.setItem(key, value)`, []string{key, value})
	return err
}

// ClearLocalStorage removes every localStorage entry for the current origin.
func (b *Base) ClearLocalStorage() error {
	_, err := b.page.Evaluate(`() => localStorage.clear()`)
	return err
}

// ---------------------------------------------------------------------------
// Network
// ---------------------------------------------------------------------------

// WaitForAPIResponse runs action (nil means "just wait") and blocks until a
// response whose URL matches urlPattern is observed or the timeout elapses.
func (b *Base) WaitForAPIResponse(urlPattern string, action func() error, timeout ...time.Duration) (playwright.Response, error) {
	if action == nil {
		action = func() error { return nil }
	}
	resp, err := b.page.ExpectResponse(regexp.MustCompile(urlPattern), action, playwright.PageExpectResponseOptions{
		Timeout: playwright.Float(b.millis(timeout)),
	})
	if err != nil {
		return nil, b.classify(err, urlPattern)
	}
	return resp, nil
}

// ---------------------------------------------------------------------------
// Utilities
// ---------------------------------------------------------------------------

// ExtractNumberFromText strips everything except digits, '.', and '-' and
// parses the remainder, so "$1,234.56" becomes 1234.56 and "" becomes 0.
// The heuristic is lossy (parenthesized negatives and multiple decimal
// points confuse it) and is kept as-is because the tests depend on exactly
// this behavior against the current UI.
func ExtractNumberFromText(text string) float64 {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		return 0.0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// ExtractNumberFromText is also exposed on Base for page-object call sites.
func (b *Base) ExtractNumberFromText(text string) float64 {
	return ExtractNumberFromText(text)
}
