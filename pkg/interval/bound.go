package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Bound tells whether the point of a finite endpoint belongs to the interval.
type Bound uint8

const (
	Inclusive Bound = iota + 1
	Exclusive
)

func (b Bound) String() string {
	switch b {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	}
	return "unbounded"
}

func (b Bound) invert() Bound {
	if b == Inclusive {
		return Exclusive
	}
	return Inclusive
}

// Side is the side of an interval an endpoint is acting as.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Endpoint is one side of a non-empty interval. The zero value is unbounded.
type Endpoint[P any] struct {
	bound Bound
	point P
}

// Unbounded returns an endpoint that includes every point in its direction.
func Unbounded[P any]() Endpoint[P] { return Endpoint[P]{} }

// At returns a finite endpoint.
func At[P any](b Bound, p P) Endpoint[P] {
	return Endpoint[P]{bound: b, point: p}
}

func (e Endpoint[P]) IsUnbounded() bool { return e.bound == 0 }
func (e Endpoint[P]) IsInclusive() bool { return e.bound == Inclusive }
func (e Endpoint[P]) IsExclusive() bool { return e.bound == Exclusive }

// Bound returns the inclusivity of e; the result is meaningless for an
// unbounded endpoint.
func (e Endpoint[P]) Bound() Bound { return e.bound }

// Point returns the point of a finite endpoint and the zero value otherwise.
func (e Endpoint[P]) Point() P { return e.point }

func (e Endpoint[P]) String() string {
	if e.IsUnbounded() {
		return "unbounded"
	}
	return fmt.Sprintf("%s(%v)", e.bound, e.point)
}

func (e Endpoint[P]) equal(o Endpoint[P], compare func(a, b P) int) bool {
	if e.bound != o.bound {
		return false
	}
	return e.IsUnbounded() || compare(e.point, o.point) == 0
}

// parseBoundSpec resolves a bound spec such as "[)", "(]", "[" or ")" into a
// left and right bound. A zero bound means unbounded.
func parseBoundSpec(spec string) (left, right Bound, err error) {
	if len(spec) > 2 {
		return 0, 0, errors.Newf("bound spec %q is longer than 2 characters", spec)
	}
	for i := 0; i < len(spec); i++ {
		switch c := spec[i]; {
		case c == '[' && i == 0:
			left = Inclusive
		case c == '(' && i == 0:
			left = Exclusive
		case c == ']' && i == len(spec)-1:
			right = Inclusive
		case c == ')' && i == len(spec)-1:
			right = Exclusive
		default:
			return 0, 0, errors.Newf("invalid character %q in bound spec %q", c, spec)
		}
	}
	return left, right, nil
}
