package pages

// Dashboard is the page object for the post-login landing screen with the
// portfolio summary and primary navigation.
type Dashboard struct {
	b   *Base
	url string
	loc DashboardLocators
}

// NewDashboard builds the dashboard page object around a shared base.
func NewDashboard(b *Base) *Dashboard {
	return &Dashboard{b: b, url: b.cfg.DashboardURL(), loc: b.locs.Dashboard}
}

// Navigate opens the dashboard and waits for the URL to settle.
func (p *Dashboard) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/dashboard")
}

// IsLoaded reports whether the header and logout control are rendered.
func (p *Dashboard) IsLoaded() (bool, error) {
	header, err := p.b.IsVisible(p.loc.Header)
	if err != nil || !header {
		return false, err
	}
	return p.b.IsVisible(p.loc.LogoutButton)
}

// Logout clicks the logout control and waits for the login redirect.
func (p *Dashboard) Logout() error {
	if err := p.b.Click(p.loc.LogoutButton); err != nil {
		return err
	}
	return p.b.WaitForURL("/login")
}

// IsLoggedIn reports whether the logout control is visible.
func (p *Dashboard) IsLoggedIn() (bool, error) {
	return p.b.IsVisible(p.loc.LogoutButton)
}

// NavigateToTrading follows the trading nav link.
func (p *Dashboard) NavigateToTrading() error {
	if err := p.b.Click(p.loc.TradingLink); err != nil {
		return err
	}
	return p.b.WaitForURL("/trading")
}

// NavigateToPortfolio follows the portfolio nav link.
func (p *Dashboard) NavigateToPortfolio() error {
	if err := p.b.Click(p.loc.PortfolioLink); err != nil {
		return err
	}
	return p.b.WaitForURL("/portfolio")
}

// NavigateToWatchlists follows the watchlists nav link.
func (p *Dashboard) NavigateToWatchlists() error {
	if err := p.b.Click(p.loc.WatchlistsLink); err != nil {
		return err
	}
	return p.b.WaitForURL("/watchlists")
}

// NavigateToTrades follows the trade history nav link.
func (p *Dashboard) NavigateToTrades() error {
	if err := p.b.Click(p.loc.TradesLink); err != nil {
		return err
	}
	return p.b.WaitForURL("/trades")
}

// PortfolioSummaryDisplayed reports whether at least one summary metric
// (portfolio value or cash balance) is visible.
func (p *Dashboard) PortfolioSummaryDisplayed() (bool, error) {
	value, err := p.b.IsVisible(p.loc.PortfolioValue)
	if err != nil {
		return false, err
	}
	if value {
		return true, nil
	}
	return p.b.IsVisible(p.loc.CashBalance)
}

// PortfolioValue extracts the numeric portfolio value, if displayed.
func (p *Dashboard) PortfolioValue() (float64, bool, error) {
	return p.metric(p.loc.PortfolioValue)
}

// CashBalance extracts the numeric cash balance, if displayed.
func (p *Dashboard) CashBalance() (float64, bool, error) {
	return p.metric(p.loc.CashBalance)
}

func (p *Dashboard) metric(selector string) (float64, bool, error) {
	visible, err := p.b.IsVisible(selector)
	if err != nil || !visible {
		return 0, false, err
	}
	text, err := p.b.GetText(selector)
	if err != nil {
		return 0, false, err
	}
	return p.b.ExtractNumberFromText(text), true, nil
}

// TopPositionsDisplayed reports whether the top-positions section is shown.
func (p *Dashboard) TopPositionsDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.TopPositions)
}

// NavigationVisible reports whether the navigation menu is rendered.
func (p *Dashboard) NavigationVisible() (bool, error) {
	return p.b.IsVisible(p.loc.NavigationMenu)
}

// ExpectLoaded asserts the dashboard header and logout control render.
func (p *Dashboard) ExpectLoaded() error {
	if err := p.b.ExpectVisible(p.loc.Header); err != nil {
		return err
	}
	return p.b.ExpectVisible(p.loc.LogoutButton)
}

// ExpectLoggedIn asserts an authenticated dashboard: logout control visible
// and URL under /dashboard.
func (p *Dashboard) ExpectLoggedIn() error {
	if err := p.b.ExpectVisible(p.loc.LogoutButton); err != nil {
		return err
	}
	return p.b.ExpectURL("/dashboard")
}

// ExpectPortfolioSummaryVisible asserts at least one summary metric shows
// up within the timeout; the summary renders asynchronously.
func (p *Dashboard) ExpectPortfolioSummaryVisible() error {
	return p.b.PollUntil("portfolio summary visible", p.PortfolioSummaryDisplayed)
}

// ExpectNavigationVisible asserts the navigation menu is rendered.
func (p *Dashboard) ExpectNavigationVisible() error {
	return p.b.ExpectVisible(p.loc.NavigationMenu)
}
