package domain

import (
	"fmt"
	"time"
)

// TradeType is the side of a trade.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

// String returns the wire/display form of the trade type.
func (t TradeType) String() string { return string(t) }

// Trade represents a stock trade submitted or observed through the UI.
// Price, TotalAmount, Timestamp, and Fees are populated only when the page
// under test exposes them.
type Trade struct {
	Symbol      string     `json:"symbol"`
	Quantity    int        `json:"quantity"`
	Type        TradeType  `json:"trade_type"`
	Price       *float64   `json:"price,omitempty"`
	TotalAmount *float64   `json:"total_amount,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Fees        *float64   `json:"fees,omitempty"`
}

// NewTrade builds a Trade, enforcing a non-empty symbol and positive quantity.
func NewTrade(symbol string, quantity int, tradeType TradeType) (Trade, error) {
	if symbol == "" {
		return Trade{}, fmt.Errorf("%w: symbol cannot be empty", ErrValidation)
	}
	if quantity <= 0 {
		return Trade{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
	}
	return Trade{Symbol: symbol, Quantity: quantity, Type: tradeType}, nil
}

// MustTrade is NewTrade for fixture data; it panics on invalid input.
func MustTrade(symbol string, quantity int, tradeType TradeType) Trade {
	tr, err := NewTrade(symbol, quantity, tradeType)
	if err != nil {
		panic(err)
	}
	return tr
}

// ToMap converts the trade to a map. The timestamp is rendered RFC 3339.
func (t Trade) ToMap() map[string]any {
	m := map[string]any{
		"symbol":       t.Symbol,
		"quantity":     t.Quantity,
		"trade_type":   t.Type.String(),
		"price":        t.Price,
		"total_amount": t.TotalAmount,
		"fees":         t.Fees,
	}
	if t.Timestamp != nil {
		m["timestamp"] = t.Timestamp.Format(time.RFC3339)
	} else {
		m["timestamp"] = nil
	}
	return m
}

// String renders a short human-readable form for logs.
func (t Trade) String() string {
	if t.Price != nil {
		return fmt.Sprintf("Trade(%s %d %s @ $%.2f)", t.Type, t.Quantity, t.Symbol, *t.Price)
	}
	return fmt.Sprintf("Trade(%s %d %s)", t.Type, t.Quantity, t.Symbol)
}
