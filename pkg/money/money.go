package money

import (
	"fmt"
	"strings"
)

// symbols maps supported currency codes to their display symbol.
// NGN is rendered as a textual code prefix because no compact glyph
// renders reliably in the PDF core fonts.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"NGN": "NGN ",
}

// Symbol returns the display symbol for a currency code, falling back
// to "$" for unrecognized codes.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return "$"
}

// Format renders an amount with its currency symbol, thousands grouping
// and exactly two decimal places, e.g. Format(1234.5, "USD") == "$1,234.50".
func Format(amount float64, code string) string {
	return Symbol(code) + group(fmt.Sprintf("%.2f", amount))
}

// FormatAmount renders the amount with grouping and two decimals but no
// currency symbol.
func FormatAmount(amount float64) string {
	return group(fmt.Sprintf("%.2f", amount))
}

// group inserts comma separators into the integer part of a fixed-point
// decimal string.
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
