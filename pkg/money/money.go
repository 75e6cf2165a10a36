// Package money represents monetary amounts as integer cents so that
// arithmetic on bill totals is exact. Percentages are applied in integer
// basis points with round-half-up, which keeps results identical across
// databases and architectures.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// Cents is a monetary amount in hundredths of the currency unit.
type Cents int64

// FromDecimal converts a decimal amount (e.g. 70.50 from JSON) to cents,
// rounding half away from zero at the second decimal place.
func FromDecimal(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// Decimal returns the amount as a float for JSON output.
func (c Cents) Decimal() float64 {
	return float64(c) / 100
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(n int) Cents {
	return c * Cents(n)
}

// Percent returns pct% of the amount, rounded half up. pct itself is
// truncated to two decimal places (basis-point precision).
func (c Cents) Percent(pct float64) Cents {
	bps := int64(math.Round(pct * 100))
	return Cents((int64(c)*bps + 5000) / 10000)
}

// String formats the amount with two decimal places, e.g. "283.50".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a plain decimal number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Decimal(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts a decimal number and stores it as cents.
func (c *Cents) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", string(data), err)
	}
	*c = FromDecimal(f)
	return nil
}
