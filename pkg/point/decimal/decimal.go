package decimal

import (
	"github.com/henderiw/interval/pkg/interval"
	"github.com/shopspring/decimal"
)

// Decimal is the continuous domain of arbitrary precision decimals.
// decimal.Decimal is not comparable with ==, so intervals over this domain
// are compared with Interval.Equal.
type Decimal struct{}

func (Decimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (Decimal) Discrete() bool { return false }

func (Decimal) Step(p decimal.Decimal, _ int) (decimal.Decimal, error) {
	return p, interval.ErrContinuous
}

// Normalize drops trailing fractional zeros, so 1.50 and 1.5 have the same
// representation.
func (Decimal) Normalize(p decimal.Decimal) (decimal.Decimal, error) {
	return decimal.NewFromString(p.String())
}

func (Decimal) Format(p decimal.Decimal) string { return p.String() }

func (Decimal) Parse(s string) (decimal.Decimal, error) { return decimal.NewFromString(s) }

// Size returns the length of the interval between from and to.
func (Decimal) Size(from, to decimal.Decimal) decimal.Decimal { return to.Sub(from) }

// RangeFrom builds the decimal interval from, to with the given bound spec.
func RangeFrom(from, to decimal.Decimal, spec string) (interval.Interval[decimal.Decimal, Decimal], error) {
	return interval.New[decimal.Decimal, Decimal](from, to, spec)
}

// ParseRange parses decimal interval text such as "[0.5,10.25)".
func ParseRange(s string) (interval.Interval[decimal.Decimal, Decimal], error) {
	return interval.Parse[decimal.Decimal, Decimal](s)
}
