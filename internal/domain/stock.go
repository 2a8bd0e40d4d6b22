package domain

import "fmt"

// Stock represents a stock position as rendered by the portfolio page.
// Everything beyond the symbol is optional because pages expose different
// subsets of the position data.
type Stock struct {
	Symbol               string   `json:"symbol"`
	Name                 string   `json:"name,omitempty"`
	Price                *float64 `json:"price,omitempty"`
	Quantity             *int     `json:"quantity,omitempty"`
	Value                *float64 `json:"value,omitempty"`
	CostBasis            *float64 `json:"cost_basis,omitempty"`
	ProfitLoss           *float64 `json:"profit_loss,omitempty"`
	ProfitLossPercentage *float64 `json:"profit_loss_percentage,omitempty"`
}

// NewStock builds a Stock, enforcing a non-empty symbol.
func NewStock(symbol string) (Stock, error) {
	if symbol == "" {
		return Stock{}, fmt.Errorf("%w: symbol cannot be empty", ErrValidation)
	}
	return Stock{Symbol: symbol}, nil
}

// ToMap converts the stock to a map.
func (s Stock) ToMap() map[string]any {
	return map[string]any{
		"symbol":                 s.Symbol,
		"name":                   s.Name,
		"price":                  s.Price,
		"quantity":               s.Quantity,
		"value":                  s.Value,
		"cost_basis":             s.CostBasis,
		"profit_loss":            s.ProfitLoss,
		"profit_loss_percentage": s.ProfitLossPercentage,
	}
}

// String renders a short human-readable form for logs.
func (s Stock) String() string {
	qty := 0
	if s.Quantity != nil {
		qty = *s.Quantity
	}
	price := 0.0
	if s.Price != nil {
		price = *s.Price
	}
	return fmt.Sprintf("Stock(%s: %d shares @ $%.2f)", s.Symbol, qty, price)
}
