package config

import "github.com/papertrade/tradesim-e2e/internal/domain"

// Canned test accounts. These exist in the seeded database of the application
// under test.
var (
	PrimaryUser   = domain.MustUser("john@example.com", "password123", "John Doe")
	SecondaryUser = domain.MustUser("jane@example.com", "password123", "Jane Smith")
	TertiaryUser  = domain.MustUser("bob@example.com", "password123", "Bob Johnson")
)

// AllUsers returns every seeded test user, primary first.
func AllUsers() []domain.User {
	return []domain.User{PrimaryUser, SecondaryUser, TertiaryUser}
}

// InvalidUser returns credentials that do not exist, for negative tests.
func InvalidUser() domain.User {
	return domain.MustUser("invalid@example.com", "wrongpassword", "Invalid User")
}

// StockSymbols lists the tickers the seeded market data contains.
var StockSymbols = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "NVDA", "AMZN", "META"}

// Trade quantities used by the trading tests.
const (
	DefaultTradeQuantity = 10
	LargeTradeQuantity   = 100
	SmallTradeQuantity   = 1
)
