package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"usd with grouping", 1234.5, "USD", "$1,234.50"},
		{"ngn textual prefix", 1234.5, "NGN", "NGN 1,234.50"},
		{"eur", 99.9, "EUR", "€99.90"},
		{"gbp", 0, "GBP", "£0.00"},
		{"inr", 100000, "INR", "₹100,000.00"},
		{"unknown code falls back to dollar", 1234.5, "XYZ", "$1,234.50"},
		{"million grouping", 1234567.891, "USD", "$1,234,567.89"},
		{"no grouping under a thousand", 999.99, "USD", "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.code))
		})
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "₹", Symbol("INR"))
	assert.Equal(t, "$", Symbol(""))
	assert.Equal(t, "$", Symbol("KES"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatAmount(1234.5))
	assert.Equal(t, "-1,234.50", FormatAmount(-1234.5))
	assert.Equal(t, "0.00", FormatAmount(0))
}
