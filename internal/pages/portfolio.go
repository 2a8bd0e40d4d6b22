package pages

// Portfolio is the page object for the holdings screen.
type Portfolio struct {
	b   *Base
	url string
	loc PortfolioLocators
}

// NewPortfolio builds the portfolio page object around a shared base.
func NewPortfolio(b *Base) *Portfolio {
	return &Portfolio{b: b, url: b.cfg.PortfolioURL(), loc: b.locs.Portfolio}
}

// Navigate opens the portfolio page and waits for the URL to settle.
func (p *Portfolio) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/portfolio")
}

// IsLoaded reports whether the page header is rendered.
func (p *Portfolio) IsLoaded() (bool, error) {
	return p.b.IsVisible(p.loc.Header)
}

// PositionsDisplayed reports whether any position row with a known ticker
// is rendered.
func (p *Portfolio) PositionsDisplayed() (bool, error) {
	n, err := p.b.Count(p.loc.StockSymbol)
	return n > 0, err
}

// PositionCount returns the number of rendered positions.
func (p *Portfolio) PositionCount() (int, error) {
	return p.b.Count(p.loc.StockSymbol)
}

// EmptyStateDisplayed reports whether the no-holdings placeholder shows.
func (p *Portfolio) EmptyStateDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.EmptyState)
}

// MetricsDisplayed reports whether the portfolio metrics block is visible.
func (p *Portfolio) MetricsDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.Metrics)
}

// PortfolioValue extracts the numeric total value, if displayed.
func (p *Portfolio) PortfolioValue() (float64, bool, error) {
	visible, err := p.MetricsDisplayed()
	if err != nil || !visible {
		return 0, false, err
	}
	text, err := p.b.GetText(p.loc.Metrics)
	if err != nil {
		return 0, false, err
	}
	return p.b.ExtractNumberFromText(text), true, nil
}

// TradeButtonsVisible reports whether per-position trade buttons exist.
func (p *Portfolio) TradeButtonsVisible() (bool, error) {
	n, err := p.b.Count(p.loc.TradeButton)
	return n > 0, err
}

// ClickTradeButtonForPosition clicks the trade button on the index-th
// position row; rows beyond the rendered count are ignored.
func (p *Portfolio) ClickTradeButtonForPosition(index int) error {
	n, err := p.b.Count(p.loc.TradeButton)
	if err != nil || n <= index {
		return err
	}
	return p.b.ClickNth(p.loc.TradeButton, index)
}

// Refresh reloads the page and waits for the network to settle.
func (p *Portfolio) Refresh() error {
	return p.b.Reload()
}

// ExpectLoaded asserts the portfolio page rendered at /portfolio.
func (p *Portfolio) ExpectLoaded() error {
	if err := p.b.ExpectVisible(p.loc.Header); err != nil {
		return err
	}
	return p.b.ExpectURL("/portfolio")
}

// ExpectPositionsDisplayed asserts at least one position renders.
func (p *Portfolio) ExpectPositionsDisplayed() error {
	return p.b.PollUntil("positions rendered", p.PositionsDisplayed)
}

// ExpectMetricsDisplayed asserts the metrics block renders.
func (p *Portfolio) ExpectMetricsDisplayed() error {
	return p.b.PollUntil("portfolio metrics rendered", p.MetricsDisplayed)
}

// ExpectEmptyState asserts the no-holdings placeholder renders.
func (p *Portfolio) ExpectEmptyState() error {
	return p.b.ExpectVisible(p.loc.EmptyState)
}
