package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumberFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "currency with thousands separator", text: "$1,234.56", want: 1234.56},
		{name: "empty string", text: "", want: 0.0},
		{name: "plain integer", text: "42 shares", want: 42},
		{name: "negative", text: "-$15.20", want: -15.20},
		{name: "no digits", text: "n/a", want: 0.0},
		{name: "percentage", text: "+12.5%", want: 12.5},
		{name: "label around value", text: "Total Value: $98,765.43", want: 98765.43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractNumberFromText(tt.text), 1e-9)
		})
	}
}

// The stripping heuristic is documented as lossy; these cases pin down the
// behavior so a future "fix" shows up as a deliberate test change.
func TestExtractNumberFromTextLossyCases(t *testing.T) {
	// Accounting-style negative: parens are stripped, the sign is lost.
	assert.InDelta(t, 15.20, ExtractNumberFromText("($15.20)"), 1e-9)
	// Two numbers collapse into one unparsable token.
	assert.InDelta(t, 0.0, ExtractNumberFromText("1.2 of 3.4"), 1e-9)
}
