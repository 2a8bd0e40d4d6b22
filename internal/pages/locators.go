package pages

import "github.com/BurntSushi/toml"

// Locators collects every selector the page objects use, grouped by screen.
// The defaults below track the current application build; text locators in
// particular (case-insensitive alternations, ticker lists) are fragile
// against UI copy changes, so the whole table can be overridden from a TOML
// file without touching code.
type Locators struct {
	Login     LoginLocators     `toml:"login"`
	Dashboard DashboardLocators `toml:"dashboard"`
	Trading   TradingLocators   `toml:"trading"`
	Portfolio PortfolioLocators `toml:"portfolio"`
	Watchlist WatchlistLocators `toml:"watchlist"`
	History   HistoryLocators   `toml:"history"`
}

// LoginLocators selects the login and registration form elements.
type LoginLocators struct {
	EmailInput    string `toml:"email_input"`
	PasswordInput string `toml:"password_input"`
	NameInput     string `toml:"name_input"`
	SubmitButton  string `toml:"submit_button"`
	ErrorMessage  string `toml:"error_message"`
	RegisterLink  string `toml:"register_link"`
	LoginLink     string `toml:"login_link"`
}

// DashboardLocators selects the dashboard header, metrics, and navigation.
type DashboardLocators struct {
	Header         string `toml:"header"`
	LogoutButton   string `toml:"logout_button"`
	PortfolioValue string `toml:"portfolio_value"`
	CashBalance    string `toml:"cash_balance"`
	ProfitLoss     string `toml:"profit_loss"`
	TopPositions   string `toml:"top_positions"`
	NavigationMenu string `toml:"navigation_menu"`
	TradingLink    string `toml:"trading_link"`
	PortfolioLink  string `toml:"portfolio_link"`
	WatchlistsLink string `toml:"watchlists_link"`
	TradesLink     string `toml:"trades_link"`
}

// TradingLocators selects the stock list and the trade modal.
type TradingLocators struct {
	Header         string `toml:"header"`
	TradeButton    string `toml:"trade_button"`
	BuyButton      string `toml:"buy_button"`
	SellButton     string `toml:"sell_button"`
	QuantityInput  string `toml:"quantity_input"`
	ExecuteButton  string `toml:"execute_button"`
	CancelButton   string `toml:"cancel_button"`
	SuccessMessage string `toml:"success_message"`
	ErrorMessage   string `toml:"error_message"`
	StockSymbols   string `toml:"stock_symbols"`
}

// PortfolioLocators selects the positions table and metrics.
type PortfolioLocators struct {
	Header       string `toml:"header"`
	PositionRow  string `toml:"position_row"`
	StockSymbol  string `toml:"stock_symbol"`
	TradeButton  string `toml:"trade_button"`
	Metrics      string `toml:"metrics"`
	EmptyState   string `toml:"empty_state"`
	QuantityCell string `toml:"quantity_cell"`
	ValueCell    string `toml:"value_cell"`
}

// WatchlistLocators selects the watchlist listing and editor controls.
type WatchlistLocators struct {
	Header            string `toml:"header"`
	CreateButton      string `toml:"create_button"`
	NameInput         string `toml:"name_input"`
	SaveButton        string `toml:"save_button"`
	CancelButton      string `toml:"cancel_button"`
	WatchlistItem     string `toml:"watchlist_item"`
	AddStockButton    string `toml:"add_stock_button"`
	StockSymbolInput  string `toml:"stock_symbol_input"`
	RemoveStockButton string `toml:"remove_stock_button"`
	DeleteButton      string `toml:"delete_button"`
	SuccessMessage    string `toml:"success_message"`
	ErrorMessage      string `toml:"error_message"`
}

// HistoryLocators selects the trade history table.
type HistoryLocators struct {
	Header        string `toml:"header"`
	TradeRow      string `toml:"trade_row"`
	TradeType     string `toml:"trade_type"`
	StockSymbol   string `toml:"stock_symbol"`
	PriceCell     string `toml:"price_cell"`
	TimestampCell string `toml:"timestamp_cell"`
	SortButton    string `toml:"sort_button"`
	FilterButton  string `toml:"filter_button"`
	Pagination    string `toml:"pagination"`
	EmptyState    string `toml:"empty_state"`
}

// DefaultLocators returns the locator table for the current application
// build.
func DefaultLocators() Locators {
	return Locators{
		Login: LoginLocators{
			EmailInput:    `input[type="email"]`,
			PasswordInput: `input[type="password"]`,
			NameInput:     `input[name="name"]`,
			SubmitButton:  `button[type="submit"]`,
			ErrorMessage:  `text=/invalid credentials|user not found|invalid password/i`,
			RegisterLink:  `text=/sign up|register|create account/i`,
			LoginLink:     `text=/sign in|login|already have/i`,
		},
		Dashboard: DashboardLocators{
			Header:         `text=/dashboard/i`,
			LogoutButton:   `text=Logout`,
			PortfolioValue: `text=/portfolio value|total value/i`,
			CashBalance:    `text=/cash balance|available cash/i`,
			ProfitLoss:     `text=/profit|loss|p&l/i`,
			TopPositions:   `text=/top positions|holdings/i`,
			NavigationMenu: `nav`,
			TradingLink:    `text=/trading|trade stocks/i`,
			PortfolioLink:  `text=/portfolio/i`,
			WatchlistsLink: `text=/watchlist/i`,
			TradesLink:     `text=/trades|trade history/i`,
		},
		Trading: TradingLocators{
			Header:         `text=/trading|trade stocks/i`,
			TradeButton:    `button:has-text("Trade")`,
			BuyButton:      `text=BUY`,
			SellButton:     `text=SELL`,
			QuantityInput:  `input[type="number"]`,
			ExecuteButton:  `button:has-text(/execute|buy|sell|confirm/i)`,
			CancelButton:   `button:has-text(/cancel|close/i)`,
			SuccessMessage: `text=/success|completed|executed/i`,
			ErrorMessage:   `text=/error|failed|insufficient/i`,
			StockSymbols:   `text=/AAPL|GOOGL|MSFT|TSLA|NVDA/i`,
		},
		Portfolio: PortfolioLocators{
			Header:       `text=/portfolio/i`,
			PositionRow:  `[data-testid="position-row"], tr`,
			StockSymbol:  `text=/AAPL|GOOGL|MSFT|TSLA|NVDA/i`,
			TradeButton:  `button:has-text(/trade/i)`,
			Metrics:      `text=/total value|portfolio value/i`,
			EmptyState:   `text=/no positions|no holdings|empty/i`,
			QuantityCell: `text=/shares|qty/i`,
			ValueCell:    `text=/value|\$/i`,
		},
		Watchlist: WatchlistLocators{
			Header:            `text=/watchlist/i`,
			CreateButton:      `button:has-text(/create|new watchlist/i)`,
			NameInput:         `input[type="text"], input[placeholder*="name"]`,
			SaveButton:        `button:has-text(/save|create/i)`,
			CancelButton:      `button:has-text(/cancel|close/i)`,
			WatchlistItem:     `[data-testid="watchlist-item"], .watchlist-item`,
			AddStockButton:    `button:has-text(/add stock|add/i)`,
			StockSymbolInput:  `input[placeholder*="symbol"], input[placeholder*="stock"]`,
			RemoveStockButton: `button:has-text(/remove|delete/i)`,
			DeleteButton:      `button:has-text(/delete watchlist/i)`,
			SuccessMessage:    `text=/success|added|created/i`,
			ErrorMessage:      `text=/error|failed|already exists/i`,
		},
		History: HistoryLocators{
			Header:        `text=/trade history|trades/i`,
			TradeRow:      `[data-testid="trade-row"], tr`,
			TradeType:     `text=/BUY|SELL/i`,
			StockSymbol:   `text=/AAPL|GOOGL|MSFT|TSLA|NVDA/i`,
			PriceCell:     `text=/\$/i`,
			TimestampCell: `text=/ago|AM|PM|:/i`,
			SortButton:    `button:has-text(/sort|date/i)`,
			FilterButton:  `button:has-text(/filter/i)`,
			Pagination:    `text=/page|next|previous/i`,
			EmptyState:    `text=/no trades|no history|empty/i`,
		},
	}
}

// LoadLocators reads a TOML locator file at path and merges it on top of the
// defaults, so an override file only needs the selectors that changed.
func LoadLocators(path string) (Locators, error) {
	locs := DefaultLocators()
	if path == "" {
		return locs, nil
	}
	if _, err := toml.DecodeFile(path, &locs); err != nil {
		return Locators{}, err
	}
	return locs, nil
}
