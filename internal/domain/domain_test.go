package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  bool
	}{
		{name: "valid user", email: "john@example.com", password: "password123", userName: "John Doe"},
		{name: "empty name is allowed", email: "john@example.com", password: "password123", userName: ""},
		{name: "empty email", email: "", password: "password123", userName: "John Doe", wantErr: true},
		{name: "empty password", email: "john@example.com", password: "", userName: "John Doe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.password, tt.userName)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, u.Email)
			assert.Equal(t, tt.password, u.Password)
			assert.Equal(t, tt.userName, u.Name)
		})
	}
}

func TestUserStringHidesPassword(t *testing.T) {
	u := MustUser("john@example.com", "supersecret", "John Doe")
	assert.NotContains(t, u.String(), "supersecret")
	assert.Contains(t, u.String(), "john@example.com")
}

func TestUserToMap(t *testing.T) {
	u := MustUser("jane@example.com", "password123", "Jane Smith")
	m := u.ToMap()
	assert.Equal(t, "jane@example.com", m["email"])
	assert.Equal(t, "password123", m["password"])
	assert.Equal(t, "Jane Smith", m["name"])
}

func TestNewTrade(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		quantity  int
		tradeType TradeType
		wantErr   bool
	}{
		{name: "valid buy", symbol: "AAPL", quantity: 10, tradeType: TradeTypeBuy},
		{name: "valid sell", symbol: "TSLA", quantity: 1, tradeType: TradeTypeSell},
		{name: "empty symbol", symbol: "", quantity: 10, tradeType: TradeTypeBuy, wantErr: true},
		{name: "zero quantity", symbol: "AAPL", quantity: 0, tradeType: TradeTypeBuy, wantErr: true},
		{name: "negative quantity", symbol: "AAPL", quantity: -5, tradeType: TradeTypeSell, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTrade(tt.symbol, tt.quantity, tt.tradeType)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, tr.Symbol)
			assert.Equal(t, tt.quantity, tr.Quantity)
			assert.Equal(t, tt.tradeType, tr.Type)
		})
	}
}

func TestTradeToMap(t *testing.T) {
	tr := MustTrade("MSFT", 10, TradeTypeBuy)

	m := tr.ToMap()
	assert.Equal(t, "MSFT", m["symbol"])
	assert.Equal(t, 10, m["quantity"])
	assert.Equal(t, "BUY", m["trade_type"])
	assert.Nil(t, m["timestamp"])

	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	tr.Timestamp = &ts
	m = tr.ToMap()
	assert.Equal(t, "2025-06-01T09:30:00Z", m["timestamp"])
}

func TestNewStock(t *testing.T) {
	s, err := NewStock("NVDA")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", s.Symbol)

	_, err = NewStock("")
	require.ErrorIs(t, err, ErrValidation)
}

func TestTradeTypeString(t *testing.T) {
	assert.Equal(t, "BUY", TradeTypeBuy.String())
	assert.Equal(t, "SELL", TradeTypeSell.String())
}
