package types

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a float64 wrapper representing an amount of currency.
type Money float64

// Decimal returns m as a fixed-point decimal. Non-finite values map to zero.
func (m Money) Decimal() decimal.Decimal {
	if !m.finite() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(float64(m))
}

// String formats m with exactly two decimals, e.g. "-542604800.00".
// Non-finite values print as Go would ("NaN", "+Inf").
func (m Money) String() string {
	if !m.finite() {
		return strconv.FormatFloat(float64(m), 'f', -1, 64)
	}
	return m.Decimal().StringFixed(2)
}

// Humanized returns a short string with automatic unit ($, K, M, B, T).
func (m Money) Humanized() string {
	v := float64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case !m.finite():
		return m.String()
	case v >= 1e12:
		return fmt.Sprintf("%s$%.2fT", sign, v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s$%.2fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.2fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s$%.2f", sign, v)
	}
}

func (m Money) finite() bool {
	return !math.IsNaN(float64(m)) && !math.IsInf(float64(m), 0)
}
