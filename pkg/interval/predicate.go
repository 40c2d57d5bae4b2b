package interval

// StrictlyLeftOf reports whether every point of iv is less than every point
// of o. Empty intervals are never strictly left of anything.
func (iv Interval[P, D]) StrictlyLeftOf(o Interval[P, D]) bool {
	if !iv.span || !o.span {
		return false
	}
	return iv.compare(Right, iv.right, Left, o.left) < 0
}

// StrictlyRightOf reports whether every point of iv is greater than every
// point of o.
func (iv Interval[P, D]) StrictlyRightOf(o Interval[P, D]) bool {
	return o.StrictlyLeftOf(iv)
}

// AdjacentLeftOf reports whether iv ends exactly where o starts, without a
// shared point and without a point in between.
//
//	   iv      o
//	f------)[-----t
func (iv Interval[P, D]) AdjacentLeftOf(o Interval[P, D]) bool {
	if !iv.span || !o.span {
		return false
	}
	iv.assertCanonical()
	o.assertCanonical()
	return touches[P, D](iv.right, o.left)
}

// AdjacentRightOf reports whether iv starts exactly where o ends.
func (iv Interval[P, D]) AdjacentRightOf(o Interval[P, D]) bool {
	return o.AdjacentLeftOf(iv)
}

// Adjacent reports whether iv and o are adjacent in either order.
func (iv Interval[P, D]) Adjacent(o Interval[P, D]) bool {
	return iv.AdjacentLeftOf(o) || iv.AdjacentRightOf(o)
}

// touches reports whether a right and a left endpoint sit on the same point
// with exactly one of them inclusive.
func touches[P any, D Domain[P]](right, left Endpoint[P]) bool {
	if right.IsUnbounded() || left.IsUnbounded() {
		return false
	}
	var d D
	if d.Compare(right.point, left.point) != 0 {
		return false
	}
	return right.IsInclusive() != left.IsInclusive()
}

// assertCanonical panics when a discrete interval is not in the
// [inclusive, exclusive) form every constructor produces.
func (iv Interval[P, D]) assertCanonical() {
	var d D
	if !iv.span || !d.Discrete() {
		return
	}
	if iv.left.IsExclusive() || iv.right.IsInclusive() {
		panic(invariantf("discrete interval %s is not in [) form", iv))
	}
}

// Overlaps reports whether iv and o share at least one point.
func (iv Interval[P, D]) Overlaps(o Interval[P, D]) bool {
	return iv.span && o.span && !iv.StrictlyLeftOf(o) && !iv.StrictlyRightOf(o)
}

// Contains reports whether every point of o is a point of iv. The empty
// interval is contained in every interval.
func (iv Interval[P, D]) Contains(o Interval[P, D]) bool {
	if !o.span {
		return true
	}
	if !iv.span {
		return false
	}
	return iv.compare(Left, iv.left, Left, o.left) <= 0 &&
		iv.compare(Right, iv.right, Right, o.right) >= 0
}

// ContainsPoint reports whether p is a point of iv. Points the domain rejects
// are never contained.
func (iv Interval[P, D]) ContainsPoint(p P) bool {
	if !iv.span {
		return false
	}
	var d D
	p, err := d.Normalize(p)
	if err != nil {
		return false
	}
	e := At(Inclusive, p)
	return iv.compare(Left, iv.left, Left, e) <= 0 &&
		iv.compare(Right, iv.right, Right, e) >= 0
}
