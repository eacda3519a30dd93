package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumber checks the decimal syntax and returns the value as a float64.
// The float range bounds the value before any decimal arithmetic runs, so
// inputs like "1e20000000" fail here instead of being rescaled.
func parseNumber(s string) (decimal.Decimal, float64, bool) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, 0, false
	}
	return d, f, true
}

// ParseQuantity reads a quantity as sent by the page. Fractional and
// non-positive values are rejected with ErrInvalidQuantity.
func ParseQuantity(s string) (int, error) {
	d, f, ok := parseNumber(s)
	if !ok || f <= 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	return int(d.IntPart()), nil
}

// ParsePrice reads a unit price. Anything that is not a finite,
// non-negative number is rejected with ErrInvalidPrice.
func ParsePrice(s string) (decimal.Decimal, error) {
	_, f, ok := parseNumber(s)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return PriceFromFloat(f)
}

// PriceFromFloat converts a float price, rejecting NaN, infinities and
// negative values.
func PriceFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPrice, f)
	}
	return decimal.NewFromFloat(f), nil
}
