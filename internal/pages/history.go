package pages

import "fmt"

// TradeHistory is the page object for the executed-trades screen.
type TradeHistory struct {
	b   *Base
	url string
	loc HistoryLocators
}

// NewTradeHistory builds the trade history page object around a shared base.
func NewTradeHistory(b *Base) *TradeHistory {
	return &TradeHistory{b: b, url: b.cfg.TradesURL(), loc: b.locs.History}
}

// Navigate opens the trade history page and waits for the URL to settle.
func (p *TradeHistory) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/trades")
}

// IsLoaded waits for the header to render and reports the result.
func (p *TradeHistory) IsLoaded() (bool, error) {
	err := p.b.PollUntil("trade history header visible", func() (bool, error) {
		return p.b.IsVisible(p.loc.Header)
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

// TradesDisplayed reports whether any trade row is rendered.
func (p *TradeHistory) TradesDisplayed() (bool, error) {
	n, err := p.b.Count(p.loc.TradeType)
	return n > 0, err
}

// TradeCount returns the number of rendered trades.
func (p *TradeHistory) TradeCount() (int, error) {
	return p.b.Count(p.loc.TradeType)
}

// EmptyStateDisplayed reports whether the no-trades placeholder shows.
func (p *TradeHistory) EmptyStateDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.EmptyState)
}

// TradeTypeDisplayed reports whether a trade of the given side (BUY/SELL)
// is rendered.
func (p *TradeHistory) TradeTypeDisplayed(tradeType string) (bool, error) {
	return p.b.IsVisible(fmt.Sprintf("text=%q", tradeType))
}

// SymbolDisplayed reports whether the ticker is rendered.
func (p *TradeHistory) SymbolDisplayed(symbol string) (bool, error) {
	return p.b.IsVisible(fmt.Sprintf("text=%q", symbol))
}

// TimestampsDisplayed reports whether any timestamp cell is rendered.
func (p *TradeHistory) TimestampsDisplayed() (bool, error) {
	n, err := p.b.Count(p.loc.TimestampCell)
	return n > 0, err
}

// SortButtonVisible reports whether the sort control is rendered.
func (p *TradeHistory) SortButtonVisible() (bool, error) {
	return p.b.IsVisible(p.loc.SortButton)
}

// ClickSort toggles sorting when the control is present and waits for the
// table to settle.
func (p *TradeHistory) ClickSort() error {
	visible, err := p.SortButtonVisible()
	if err != nil || !visible {
		return err
	}
	if err := p.b.Click(p.loc.SortButton); err != nil {
		return err
	}
	return p.b.WaitForLoadState("networkidle")
}

// PaginationVisible reports whether pagination controls are rendered.
func (p *TradeHistory) PaginationVisible() (bool, error) {
	return p.b.IsVisible(p.loc.Pagination)
}

// Refresh reloads the page and waits for the network to settle.
func (p *TradeHistory) Refresh() error {
	return p.b.Reload()
}

// ExpectLoaded asserts the trade history page rendered at /trades.
func (p *TradeHistory) ExpectLoaded() error {
	if err := p.b.ExpectVisible(p.loc.Header); err != nil {
		return err
	}
	return p.b.ExpectURL("/trades")
}

// ExpectTradesDisplayed asserts at least one trade row renders.
func (p *TradeHistory) ExpectTradesDisplayed() error {
	return p.b.PollUntil("trade rows rendered", p.TradesDisplayed)
}

// ExpectTradeAppears asserts a trade with the given side and ticker is
// rendered.
func (p *TradeHistory) ExpectTradeAppears(tradeType, symbol string) error {
	err := p.b.PollUntil(fmt.Sprintf("%s trade visible", tradeType), func() (bool, error) {
		return p.TradeTypeDisplayed(tradeType)
	})
	if err != nil {
		return err
	}
	return p.b.PollUntil(fmt.Sprintf("symbol %s visible", symbol), func() (bool, error) {
		return p.SymbolDisplayed(symbol)
	})
}

// ExpectEmptyState asserts the no-trades placeholder renders.
func (p *TradeHistory) ExpectEmptyState() error {
	return p.b.ExpectVisible(p.loc.EmptyState)
}
