package pages

import (
	"fmt"
	"strconv"

	"github.com/papertrade/tradesim-e2e/internal/domain"
)

// Trading is the page object for the stock list and the trade modal.
//
// The modal moves through a small lifecycle: closed, open with no side
// chosen, side chosen, submitted. The object drives those transitions but
// does not enforce the outcome; tests assert on the success or error
// indicator.
type Trading struct {
	b   *Base
	url string
	loc TradingLocators
}

// NewTrading builds the trading page object around a shared base.
func NewTrading(b *Base) *Trading {
	return &Trading{b: b, url: b.cfg.TradingURL(), loc: b.locs.Trading}
}

// Navigate opens the trading page and waits for the URL to settle.
func (p *Trading) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/trading")
}

// IsLoaded waits for the header to render (the stock list arrives
// asynchronously) and reports the result.
func (p *Trading) IsLoaded() (bool, error) {
	err := p.b.PollUntil("trading header visible", func() (bool, error) {
		return p.b.IsVisible(p.loc.Header)
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

// StocksDisplayed reports whether any known ticker is rendered.
func (p *Trading) StocksDisplayed() (bool, error) {
	n, err := p.b.Count(p.loc.StockSymbols)
	return n > 0, err
}

// TradeButtonsVisible reports whether any per-stock trade button exists.
func (p *Trading) TradeButtonsVisible() (bool, error) {
	n, err := p.b.Count(p.loc.TradeButton)
	return n > 0, err
}

// ClickFirstTradeButton waits for the stock list to render, opens the trade
// modal from the first row, and waits for the modal to appear.
func (p *Trading) ClickFirstTradeButton() error {
	err := p.b.PollUntil("trade buttons rendered", p.TradeButtonsVisible)
	if err != nil {
		return err
	}
	if err := p.b.ClickFirst(p.loc.TradeButton); err != nil {
		return err
	}
	return p.b.PollUntil("trade modal open", p.ModalOpen)
}

// ClickTradeButtonForSymbol opens the trade modal from the row showing
// symbol.
func (p *Trading) ClickTradeButtonForSymbol(symbol string) error {
	selector := fmt.Sprintf(`button:has-text("Trade"):near(text="%s")`, symbol)
	if err := p.b.Click(selector); err != nil {
		return err
	}
	return p.b.PollUntil("trade modal open", p.ModalOpen)
}

// ModalOpen reports whether the trade modal is open (both side buttons
// rendered).
func (p *Trading) ModalOpen() (bool, error) {
	buy, err := p.b.IsVisible(p.loc.BuyButton)
	if err != nil || !buy {
		return false, err
	}
	return p.b.IsVisible(p.loc.SellButton)
}

// SelectBuy chooses the BUY side in the open modal.
func (p *Trading) SelectBuy() error {
	return p.b.Click(p.loc.BuyButton)
}

// SelectSell chooses the SELL side in the open modal.
func (p *Trading) SelectSell() error {
	return p.b.Click(p.loc.SellButton)
}

// FillQuantity fills the share quantity when the input is present.
func (p *Trading) FillQuantity(quantity int) error {
	n, err := p.b.Count(p.loc.QuantityInput)
	if err != nil || n == 0 {
		return err
	}
	return p.b.Fill(p.loc.QuantityInput, strconv.Itoa(quantity))
}

// ClickExecute submits the trade when an execute control is present.
func (p *Trading) ClickExecute() error {
	n, err := p.b.Count(p.loc.ExecuteButton)
	if err != nil || n == 0 {
		return err
	}
	return p.b.ClickFirst(p.loc.ExecuteButton)
}

// ClickCancel dismisses the modal when a cancel control is present.
func (p *Trading) ClickCancel() error {
	n, err := p.b.Count(p.loc.CancelButton)
	if err != nil || n == 0 {
		return err
	}
	return p.b.ClickFirst(p.loc.CancelButton)
}

// ExecuteBuyTrade opens the modal, selects BUY, fills quantity, and submits.
// With waitForOutcome it blocks until a success or error indicator shows.
func (p *Trading) ExecuteBuyTrade(quantity int, waitForOutcome bool) error {
	return p.executeTrade(p.SelectBuy, quantity, waitForOutcome)
}

// ExecuteSellTrade opens the modal, selects SELL, fills quantity, and
// submits. With waitForOutcome it blocks until a success or error indicator
// shows.
func (p *Trading) ExecuteSellTrade(quantity int, waitForOutcome bool) error {
	return p.executeTrade(p.SelectSell, quantity, waitForOutcome)
}

// ExecuteTrade runs the modal flow for the given trade.
func (p *Trading) ExecuteTrade(trade domain.Trade, waitForOutcome bool) error {
	if trade.Type == domain.TradeTypeBuy {
		return p.ExecuteBuyTrade(trade.Quantity, waitForOutcome)
	}
	return p.ExecuteSellTrade(trade.Quantity, waitForOutcome)
}

func (p *Trading) executeTrade(selectSide func() error, quantity int, waitForOutcome bool) error {
	if err := p.ClickFirstTradeButton(); err != nil {
		return err
	}
	if err := selectSide(); err != nil {
		return err
	}
	if err := p.FillQuantity(quantity); err != nil {
		return err
	}
	if err := p.ClickExecute(); err != nil {
		return err
	}
	if waitForOutcome {
		return p.b.PollUntil("trade outcome indicator", p.OutcomeDisplayed)
	}
	return nil
}

// OutcomeDisplayed reports whether either the success or the error
// indicator is visible.
func (p *Trading) OutcomeDisplayed() (bool, error) {
	success, err := p.SuccessMessageDisplayed()
	if err != nil {
		return false, err
	}
	if success {
		return true, nil
	}
	return p.ErrorMessageDisplayed()
}

// SuccessMessageDisplayed reports whether the success indicator is visible.
func (p *Trading) SuccessMessageDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.SuccessMessage)
}

// ErrorMessageDisplayed reports whether the error indicator is visible.
func (p *Trading) ErrorMessageDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.ErrorMessage)
}

// QuantityInputVisible reports whether the quantity input exists.
func (p *Trading) QuantityInputVisible() (bool, error) {
	n, err := p.b.Count(p.loc.QuantityInput)
	return n > 0, err
}

// ExecuteButtonVisible reports whether an execute control exists.
func (p *Trading) ExecuteButtonVisible() (bool, error) {
	n, err := p.b.Count(p.loc.ExecuteButton)
	return n > 0, err
}

// ExpectLoaded asserts the trading page rendered at /trading.
func (p *Trading) ExpectLoaded() error {
	if err := p.b.ExpectVisible(p.loc.Header); err != nil {
		return err
	}
	return p.b.ExpectURL("/trading")
}

// ExpectStocksDisplayed asserts the stock list renders within the timeout.
func (p *Trading) ExpectStocksDisplayed() error {
	return p.b.PollUntil("stock list rendered", p.StocksDisplayed)
}

// ExpectModalOpen asserts the trade modal is open.
func (p *Trading) ExpectModalOpen() error {
	if err := p.b.ExpectVisible(p.loc.BuyButton); err != nil {
		return err
	}
	return p.b.ExpectVisible(p.loc.SellButton)
}

// ExpectTradeFormElements asserts the quantity input and execute control
// are present in the open modal.
func (p *Trading) ExpectTradeFormElements() error {
	if err := p.b.PollUntil("quantity input present", p.QuantityInputVisible); err != nil {
		return err
	}
	return p.b.PollUntil("execute button present", p.ExecuteButtonVisible)
}
