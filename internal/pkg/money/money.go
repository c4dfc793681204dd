// Package money handles the catalog's display-string prices. Prices arrive
// as strings that may carry a currency glyph prefix ("₦2500.00"); they are
// parsed into decimals exactly once, at the catalog boundary, and stay
// decimal through the whole pricing pipeline.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Glyphs the catalog has been observed to prefix prices with.
var currencyGlyphs = []string{"₦", "$", "€", "£"}

var ErrInvalidPrice = fmt.Errorf("money: invalid price string")

// ParsePrice strips a leading currency glyph, if any, and parses the rest
// as a decimal amount. A non-numeric remainder is a hard error: a price the
// catalog can't express as a number is a catalog defect, not a zero.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	for _, g := range currencyGlyphs {
		if strings.HasPrefix(s, g) {
			s = strings.TrimSpace(strings.TrimPrefix(s, g))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return d, nil
}

// Round2 rounds to two decimal places. Presentation only; intermediate
// pricing math stays unrounded.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ToMinorUnits converts a major-unit amount to minor units (kobo for NGN),
// the form the payment provider expects.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatNaira renders an amount the way the storefront displays it.
func FormatNaira(d decimal.Decimal) string {
	return "₦" + d.StringFixed(2)
}
