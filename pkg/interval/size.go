package interval

import (
	"github.com/cockroachdb/errors"
)

// Size measures iv with the domain's Sizer: the number of points for
// discrete domains, the length otherwise. The empty interval has size zero.
//
//	n, err := interval.Size[uint64](iv)
func Size[S any, P any, D interface {
	Domain[P]
	Sizer[P, S]
}](iv Interval[P, D]) (S, error) {
	var s S
	if !iv.span {
		return s, nil
	}
	if iv.left.IsUnbounded() || iv.right.IsUnbounded() {
		return s, errors.Wrapf(ErrUnbounded, "size of %s", iv)
	}
	var d D
	return d.Size(iv.left.point, iv.right.point), nil
}
