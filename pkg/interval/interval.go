package interval

import (
	"github.com/cockroachdb/errors"
)

// Interval is the set of points of domain D between two endpoints. Every
// value handed out by this package is normalized: the zero value is the one
// empty interval, and intervals over a discrete domain are always in the
// [inclusive, exclusive) form. Intervals are immutable.
type Interval[P any, D Domain[P]] struct {
	span  bool
	left  Endpoint[P]
	right Endpoint[P]
}

// Empty returns the empty interval.
func Empty[P any, D Domain[P]]() Interval[P, D] { return Interval[P, D]{} }

// All returns the interval unbounded on both sides.
func All[P any, D Domain[P]]() Interval[P, D] {
	return Interval[P, D]{span: true}
}

// New builds an interval from two raw points and a bound spec. The first
// character of spec is '[' or '(' for the left side, the last character is
// ']' or ')' for the right side; a side without a character is unbounded and
// its raw point is ignored.
func New[P any, D Domain[P]](left, right P, spec string) (Interval[P, D], error) {
	return NewPtr[P, D](&left, &right, spec)
}

// NewPtr is New for sparse input: a nil point makes its side unbounded.
func NewPtr[P any, D Domain[P]](left, right *P, spec string) (Interval[P, D], error) {
	lb, rb, err := parseBoundSpec(spec)
	if err != nil {
		return Interval[P, D]{}, errors.Mark(err, ErrInvalid)
	}
	return NewFromEndpoints[P, D](endpointOf(lb, left), endpointOf(rb, right))
}

// NewFromEndpoints normalizes a raw pair of endpoints.
func NewFromEndpoints[P any, D Domain[P]](left, right Endpoint[P]) (Interval[P, D], error) {
	return normalize[P, D](left, right)
}

// MustNew is like New but panics on error. It simplifies literals in tests
// and static tables.
func MustNew[P any, D Domain[P]](left, right P, spec string) Interval[P, D] {
	iv, err := New[P, D](left, right, spec)
	if err != nil {
		panic(err)
	}
	return iv
}

// Point returns the interval holding the single point p.
func Point[P any, D Domain[P]](p P) (Interval[P, D], error) {
	return New[P, D](p, p, "[]")
}

func endpointOf[P any](b Bound, p *P) Endpoint[P] {
	if b == 0 || p == nil {
		return Unbounded[P]()
	}
	return At(b, *p)
}

func normalize[P any, D Domain[P]](left, right Endpoint[P]) (Interval[P, D], error) {
	var d D
	var err error
	if left, err = normalizeEndpoint(d, Left, left); err != nil {
		return Interval[P, D]{}, err
	}
	if right, err = normalizeEndpoint(d, Right, right); err != nil {
		return Interval[P, D]{}, err
	}

	if !left.IsUnbounded() && !right.IsUnbounded() {
		switch c := d.Compare(left.point, right.point); {
		case c > 0:
			return Interval[P, D]{}, errors.Wrapf(ErrInvalid, "left bound %v is greater than right bound %v", left.point, right.point)
		case c == 0 && !(left.IsInclusive() && right.IsInclusive()):
			return Interval[P, D]{}, nil
		}
	}
	if !d.Discrete() {
		return Interval[P, D]{span: true, left: left, right: right}, nil
	}

	// discrete domains are rewritten to [inclusive, exclusive)
	if left.IsExclusive() {
		p, err := d.Step(left.point, 1)
		if err != nil {
			// nothing follows the last point of the domain
			return Interval[P, D]{}, nil
		}
		left = At(Inclusive, p)
	}
	if right.IsInclusive() {
		p, err := d.Step(right.point, 1)
		if err != nil {
			return Interval[P, D]{}, errors.Wrapf(errors.Mark(err, ErrInvalid), "right bound %v", right.point)
		}
		right = At(Exclusive, p)
	}
	if !left.IsUnbounded() && !right.IsUnbounded() && d.Compare(left.point, right.point) >= 0 {
		return Interval[P, D]{}, nil
	}
	return Interval[P, D]{span: true, left: left, right: right}, nil
}

func normalizeEndpoint[P any, D Domain[P]](d D, side Side, e Endpoint[P]) (Endpoint[P], error) {
	switch e.bound {
	case 0:
		return Unbounded[P](), nil
	case Inclusive, Exclusive:
	default:
		return e, errors.Wrapf(ErrInvalid, "%s bound has unknown inclusivity %d", side, e.bound)
	}
	p, err := d.Normalize(e.point)
	if err != nil {
		return e, errors.Wrapf(errors.Mark(err, ErrInvalid), "%s bound %v", side, e.point)
	}
	return At(e.bound, p), nil
}

// rebuild normalizes endpoints taken from normalized intervals. Failing to do
// so means a normalized value was not what it claims to be.
func rebuild[P any, D Domain[P]](left, right Endpoint[P]) Interval[P, D] {
	iv, err := normalize[P, D](left, right)
	if err != nil {
		panic(invariantf("cannot rebuild interval from %s and %s: %v", left, right, err))
	}
	return iv
}

// IsEmpty reports whether iv holds no points.
func (iv Interval[P, D]) IsEmpty() bool { return !iv.span }

// Endpoints returns the endpoints of a non-empty interval; ok is false for
// the empty interval.
func (iv Interval[P, D]) Endpoints() (left, right Endpoint[P], ok bool) {
	return iv.left, iv.right, iv.span
}

func (iv Interval[P, D]) IsLeftUnbounded() bool  { return iv.span && iv.left.IsUnbounded() }
func (iv Interval[P, D]) IsRightUnbounded() bool { return iv.span && iv.right.IsUnbounded() }

// IsUnbounded reports whether iv is unbounded on at least one side.
func (iv Interval[P, D]) IsUnbounded() bool {
	return iv.IsLeftUnbounded() || iv.IsRightUnbounded()
}

// IsPoint reports whether iv holds exactly one point.
func (iv Interval[P, D]) IsPoint() bool {
	if !iv.span || iv.left.IsUnbounded() || iv.right.IsUnbounded() {
		return false
	}
	var d D
	if d.Discrete() {
		next, err := d.Step(iv.left.point, 1)
		return err == nil && d.Compare(next, iv.right.point) == 0
	}
	return d.Compare(iv.left.point, iv.right.point) == 0
}

// Equal reports whether iv and o hold the same points. Points are compared
// through the domain, so Equal also works for point types that are not
// comparable with ==.
func (iv Interval[P, D]) Equal(o Interval[P, D]) bool {
	if iv.span != o.span {
		return false
	}
	if !iv.span {
		return true
	}
	var d D
	return iv.left.equal(o.left, d.Compare) && iv.right.equal(o.right, d.Compare)
}
