package pages

import "fmt"

// Watchlist is the page object for the watchlists screen.
type Watchlist struct {
	b   *Base
	url string
	loc WatchlistLocators
}

// NewWatchlist builds the watchlist page object around a shared base.
func NewWatchlist(b *Base) *Watchlist {
	return &Watchlist{b: b, url: b.cfg.WatchlistsURL(), loc: b.locs.Watchlist}
}

// Navigate opens the watchlists page and waits for the URL to settle.
func (p *Watchlist) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/watchlists")
}

// IsLoaded waits for the header to render and reports the result.
func (p *Watchlist) IsLoaded() (bool, error) {
	err := p.b.PollUntil("watchlist header visible", func() (bool, error) {
		return p.b.IsVisible(p.loc.Header)
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

// CreateButtonVisible reports whether the create-watchlist control shows.
func (p *Watchlist) CreateButtonVisible() (bool, error) {
	return p.b.IsVisible(p.loc.CreateButton)
}

// ClickCreateWatchlist opens the create-watchlist editor and waits for the
// name input to appear.
func (p *Watchlist) ClickCreateWatchlist() error {
	if err := p.b.Click(p.loc.CreateButton); err != nil {
		return err
	}
	return p.b.PollUntil("watchlist editor open", func() (bool, error) {
		return p.b.IsVisible(p.loc.NameInput)
	})
}

// FillWatchlistName fills the watchlist name input.
func (p *Watchlist) FillWatchlistName(name string) error {
	return p.b.Fill(p.loc.NameInput, name)
}

// ClickSave saves the editor when a save control is present.
func (p *Watchlist) ClickSave() error {
	n, err := p.b.Count(p.loc.SaveButton)
	if err != nil || n == 0 {
		return err
	}
	return p.b.ClickFirst(p.loc.SaveButton)
}

// CreateWatchlist runs the full create flow for a named watchlist.
func (p *Watchlist) CreateWatchlist(name string) error {
	if err := p.ClickCreateWatchlist(); err != nil {
		return err
	}
	if err := p.FillWatchlistName(name); err != nil {
		return err
	}
	return p.ClickSave()
}

// WatchlistCount returns the number of rendered watchlists.
func (p *Watchlist) WatchlistCount() (int, error) {
	return p.b.Count(p.loc.WatchlistItem)
}

// WatchlistDisplayed reports whether a watchlist with the exact name shows.
func (p *Watchlist) WatchlistDisplayed(name string) (bool, error) {
	return p.b.IsVisible(fmt.Sprintf("text=%q", name))
}

// ClickAddStock opens the add-stock editor when the control is present.
func (p *Watchlist) ClickAddStock() error {
	n, err := p.b.Count(p.loc.AddStockButton)
	if err != nil || n == 0 {
		return err
	}
	if err := p.b.ClickFirst(p.loc.AddStockButton); err != nil {
		return err
	}
	return p.b.PollUntil("add-stock editor open", func() (bool, error) {
		return p.b.IsVisible(p.loc.StockSymbolInput)
	})
}

// FillStockSymbol fills the ticker input in the add-stock editor.
func (p *Watchlist) FillStockSymbol(symbol string) error {
	return p.b.Fill(p.loc.StockSymbolInput, symbol)
}

// AddStockToWatchlist runs the full add-stock flow.
func (p *Watchlist) AddStockToWatchlist(symbol string) error {
	if err := p.ClickAddStock(); err != nil {
		return err
	}
	if err := p.FillStockSymbol(symbol); err != nil {
		return err
	}
	return p.ClickSave()
}

// StockInWatchlist reports whether the ticker is rendered on the page.
func (p *Watchlist) StockInWatchlist(symbol string) (bool, error) {
	return p.b.IsVisible(fmt.Sprintf("text=%q", symbol))
}

// RemoveFirstStock removes the first stock when a remove control exists.
func (p *Watchlist) RemoveFirstStock() error {
	n, err := p.b.Count(p.loc.RemoveStockButton)
	if err != nil || n == 0 {
		return err
	}
	return p.b.ClickFirst(p.loc.RemoveStockButton)
}

// DeleteFirstWatchlist deletes the first watchlist when a delete control
// exists.
func (p *Watchlist) DeleteFirstWatchlist() error {
	n, err := p.b.Count(p.loc.DeleteButton)
	if err != nil || n == 0 {
		return err
	}
	return p.b.ClickFirst(p.loc.DeleteButton)
}

// SuccessMessageDisplayed reports whether the success indicator is visible.
func (p *Watchlist) SuccessMessageDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.SuccessMessage)
}

// ErrorMessageDisplayed reports whether the error indicator is visible.
func (p *Watchlist) ErrorMessageDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.ErrorMessage)
}

// ExpectLoaded asserts the watchlists page rendered at /watchlists.
func (p *Watchlist) ExpectLoaded() error {
	if err := p.b.ExpectVisible(p.loc.Header); err != nil {
		return err
	}
	return p.b.ExpectURL("/watchlists")
}

// ExpectCreateButtonVisible asserts the create control renders.
func (p *Watchlist) ExpectCreateButtonVisible() error {
	return p.b.ExpectVisible(p.loc.CreateButton)
}

// ExpectWatchlistCreated asserts the named watchlist becomes visible in the
// listing within the timeout.
func (p *Watchlist) ExpectWatchlistCreated(name string) error {
	return p.b.PollUntil(fmt.Sprintf("watchlist %q visible", name), func() (bool, error) {
		return p.WatchlistDisplayed(name)
	})
}
