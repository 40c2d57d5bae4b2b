// Package pgrange maps intervals to and from the PostgreSQL range
// representation used by pgx.
package pgrange

import (
	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNull is returned when a NULL range is converted to an interval.
var ErrNull = errors.New("range is null")

// ToRange converts iv to a pgtype.Range. The empty interval uses the Empty
// bound type on both sides.
func ToRange[P any, D interval.Domain[P]](iv interval.Interval[P, D]) pgtype.Range[P] {
	left, right, ok := iv.Endpoints()
	if !ok {
		return pgtype.Range[P]{LowerType: pgtype.Empty, UpperType: pgtype.Empty, Valid: true}
	}
	r := pgtype.Range[P]{Valid: true}
	r.Lower, r.LowerType = fromEndpoint(left)
	r.Upper, r.UpperType = fromEndpoint(right)
	return r
}

// FromRange converts a pgtype.Range to a normalized interval.
func FromRange[P any, D interval.Domain[P]](r pgtype.Range[P]) (interval.Interval[P, D], error) {
	if !r.Valid {
		return interval.Interval[P, D]{}, ErrNull
	}
	return fromBounds[P, D](r.LowerType, r.Lower, r.UpperType, r.Upper)
}

func fromBounds[P any, D interval.Domain[P]](lt pgtype.BoundType, lower P, ut pgtype.BoundType, upper P) (interval.Interval[P, D], error) {
	if lt == pgtype.Empty || ut == pgtype.Empty {
		return interval.Empty[P, D](), nil
	}
	left, err := toEndpoint(lt, lower)
	if err != nil {
		return interval.Interval[P, D]{}, errors.Wrap(err, "lower bound")
	}
	right, err := toEndpoint(ut, upper)
	if err != nil {
		return interval.Interval[P, D]{}, errors.Wrap(err, "upper bound")
	}
	return interval.NewFromEndpoints[P, D](left, right)
}

func fromEndpoint[P any](e interval.Endpoint[P]) (P, pgtype.BoundType) {
	switch {
	case e.IsInclusive():
		return e.Point(), pgtype.Inclusive
	case e.IsExclusive():
		return e.Point(), pgtype.Exclusive
	}
	var zero P
	return zero, pgtype.Unbounded
}

func toEndpoint[P any](bt pgtype.BoundType, p P) (interval.Endpoint[P], error) {
	switch bt {
	case pgtype.Inclusive:
		return interval.At(interval.Inclusive, p), nil
	case pgtype.Exclusive:
		return interval.At(interval.Exclusive, p), nil
	case pgtype.Unbounded:
		return interval.Unbounded[P](), nil
	}
	return interval.Endpoint[P]{}, errors.Wrapf(interval.ErrInvalid, "unknown bound type %q", rune(bt))
}

// Range wraps an interval so it can be passed to and scanned by pgx
// directly. It implements pgtype.RangeValuer and pgtype.RangeScanner.
type Range[P any, D interval.Domain[P]] struct {
	Interval interval.Interval[P, D]
	Valid    bool

	lower, upper P
}

// From returns a valid Range holding iv.
func From[P any, D interval.Domain[P]](iv interval.Interval[P, D]) Range[P, D] {
	return Range[P, D]{Interval: iv, Valid: true}
}

func (r Range[P, D]) IsNull() bool { return !r.Valid }

func (r Range[P, D]) BoundTypes() (lower, upper pgtype.BoundType) {
	pr := ToRange(r.Interval)
	return pr.LowerType, pr.UpperType
}

func (r Range[P, D]) Bounds() (lower, upper any) {
	pr := ToRange(r.Interval)
	return &pr.Lower, &pr.Upper
}

func (r *Range[P, D]) ScanNull() error {
	*r = Range[P, D]{}
	return nil
}

func (r *Range[P, D]) ScanBounds() (lowerTarget, upperTarget any) {
	return &r.lower, &r.upper
}

// SetBoundTypes is called by pgx after the bounds have been scanned; it
// normalizes the scanned bounds into r.Interval.
func (r *Range[P, D]) SetBoundTypes(lower, upper pgtype.BoundType) error {
	iv, err := fromBounds[P, D](lower, r.lower, upper, r.upper)
	if err != nil {
		return err
	}
	*r = Range[P, D]{Interval: iv, Valid: true}
	return nil
}
