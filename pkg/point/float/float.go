package float

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"golang.org/x/exp/constraints"
)

// ErrNotANumber is returned for NaN and infinite points; an infinite side is
// expressed as an unbounded endpoint instead.
var ErrNotANumber = errors.New("point is not a finite number")

// Float is the continuous domain of the floating point type T.
type Float[T constraints.Float] struct{}

type (
	Float32 = Float[float32]
	Float64 = Float[float64]
)

func (Float[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float[T]) Discrete() bool { return false }

func (Float[T]) Step(p T, _ int) (T, error) { return p, interval.ErrContinuous }

// Normalize rejects NaN and infinities and maps -0 to +0 so that equal
// points are equal with ==.
func (Float[T]) Normalize(p T) (T, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return p, errors.Wrapf(ErrNotANumber, "%v", f)
	}
	if p == 0 {
		return 0, nil
	}
	return p, nil
}

func (Float[T]) Format(p T) string {
	return strconv.FormatFloat(float64(p), 'g', -1, bitSize[T]())
}

func (Float[T]) Parse(s string) (T, error) {
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(f), nil
}

// Size returns the length of the interval between from and to.
func (Float[T]) Size(from, to T) T { return to - from }

func bitSize[T constraints.Float]() int {
	smallest := math.SmallestNonzeroFloat64
	if T(smallest) == 0 {
		return 32
	}
	return 64
}

// RangeFrom builds the float interval from, to with the given bound spec.
func RangeFrom[T constraints.Float](from, to T, spec string) (interval.Interval[T, Float[T]], error) {
	return interval.New[T, Float[T]](from, to, spec)
}

// ParseRange parses float interval text such as "(1.5,2]".
func ParseRange[T constraints.Float](s string) (interval.Interval[T, Float[T]], error) {
	return interval.Parse[T, Float[T]](s)
}
