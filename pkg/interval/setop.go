package interval

import (
	"github.com/cockroachdb/errors"
)

// Union returns the interval holding the points of both iv and o. It fails
// with ErrNonContiguousUnion when the result would not be a single interval.
func (iv Interval[P, D]) Union(o Interval[P, D]) (Interval[P, D], error) {
	switch {
	case !iv.span:
		return o, nil
	case !o.span:
		return iv, nil
	case !iv.Overlaps(o) && !iv.Adjacent(o):
		return Interval[P, D]{}, errors.Wrapf(ErrNonContiguousUnion, "%s and %s", iv, o)
	}
	return rebuild[P, D](iv.minLeft(o), iv.maxRight(o)), nil
}

// Intersection returns the interval holding the points shared by iv and o.
func (iv Interval[P, D]) Intersection(o Interval[P, D]) Interval[P, D] {
	if !iv.Overlaps(o) {
		return Interval[P, D]{}
	}
	return rebuild[P, D](iv.maxLeft(o), iv.minRight(o))
}

// Difference returns the points of iv that are not points of o. It fails
// with ErrNonContiguousDifference when o cuts iv in two.
func (iv Interval[P, D]) Difference(o Interval[P, D]) (Interval[P, D], error) {
	if !iv.span {
		return iv, nil
	}
	if !iv.Overlaps(o) {
		return iv, nil
	}
	if o.Contains(iv) {
		return Interval[P, D]{}, nil
	}

	keepLeft := iv.compare(Left, o.left, Left, iv.left) > 0
	keepRight := iv.compare(Right, o.right, Right, iv.right) < 0
	switch {
	case keepLeft && keepRight:
		// "o" is in the middle of "iv".
		//
		//       iv
		// f-------------t
		//    f------t
		//       o
		return Interval[P, D]{}, errors.Wrapf(ErrNonContiguousDifference, "%s minus %s", iv, o)
	case keepLeft:
		// "o" overlaps the end of "iv".
		//
		//           o
		//        f------t
		//    f------t
		//       iv
		return rebuild[P, D](iv.left, At(o.left.bound.invert(), o.left.point)), nil
	default:
		// "o" overlaps the start of "iv".
		//
		//   o
		// f------t
		//    f------t
		//       iv
		return rebuild[P, D](At(o.right.bound.invert(), o.right.point), iv.right), nil
	}
}

// Partition splits iv around x into the pieces left of x, x itself and the
// piece right of x. Pieces may be empty. The result is nil when x is empty
// or not contained in iv. Joining the pieces in order with Union gives iv.
func (iv Interval[P, D]) Partition(x Interval[P, D]) []Interval[P, D] {
	if !x.span || !iv.Contains(x) {
		return nil
	}
	before := Interval[P, D]{}
	if !x.left.IsUnbounded() {
		before = rebuild[P, D](iv.left, At(x.left.bound.invert(), x.left.point))
	}
	after := Interval[P, D]{}
	if !x.right.IsUnbounded() {
		after = rebuild[P, D](At(x.right.bound.invert(), x.right.point), iv.right)
	}
	return []Interval[P, D]{before, x, after}
}

// PartitionPoint is Partition around the single point p.
func (iv Interval[P, D]) PartitionPoint(p P) []Interval[P, D] {
	x, err := Point[P, D](p)
	if err != nil {
		return nil
	}
	return iv.Partition(x)
}

func (iv Interval[P, D]) minLeft(o Interval[P, D]) Endpoint[P] {
	if iv.compare(Left, iv.left, Left, o.left) <= 0 {
		return iv.left
	}
	return o.left
}

func (iv Interval[P, D]) maxLeft(o Interval[P, D]) Endpoint[P] {
	if iv.compare(Left, iv.left, Left, o.left) >= 0 {
		return iv.left
	}
	return o.left
}

func (iv Interval[P, D]) minRight(o Interval[P, D]) Endpoint[P] {
	if iv.compare(Right, iv.right, Right, o.right) <= 0 {
		return iv.right
	}
	return o.right
}

func (iv Interval[P, D]) maxRight(o Interval[P, D]) Endpoint[P] {
	if iv.compare(Right, iv.right, Right, o.right) >= 0 {
		return iv.right
	}
	return o.right
}
