package interval

// CompareBounds orders two endpoints acting as the given sides. It returns
// -1, 0 or +1. An unbounded left side sorts before everything and an
// unbounded right side after everything. At an equal point a bound sits on
// the line as follows:
//
//	exclusive right < inclusive left == inclusive right < exclusive left
//
// which makes an inclusive bound reach further outward than an exclusive one
// on the same side.
func CompareBounds[P any, D Domain[P]](sa Side, a Endpoint[P], sb Side, b Endpoint[P]) int {
	switch {
	case a.IsUnbounded() && b.IsUnbounded():
		return compareInt(unboundedRank(sa), unboundedRank(sb))
	case a.IsUnbounded():
		return unboundedRank(sa)
	case b.IsUnbounded():
		return -unboundedRank(sb)
	}
	var d D
	if c := d.Compare(a.point, b.point); c != 0 {
		return c
	}
	return compareInt(offset(sa, a.bound), offset(sb, b.bound))
}

func unboundedRank(s Side) int {
	if s == Left {
		return -1
	}
	return 1
}

// offset is the infinitesimal shift of a finite bound from its point.
func offset(s Side, b Bound) int {
	switch {
	case b == Inclusive:
		return 0
	case s == Left:
		return 1
	default:
		return -1
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (iv Interval[P, D]) compare(sa Side, a Endpoint[P], sb Side, b Endpoint[P]) int {
	return CompareBounds[P, D](sa, a, sb, b)
}
