package integer

import (
	"cmp"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned when stepping leaves the range of the integer
// type.
var ErrOutOfRange = errors.New("integer out of range")

// Int is the discrete domain of the integer type T.
type Int[T constraints.Integer] struct{}

type (
	Int8   = Int[int8]
	Int16  = Int[int16]
	Int32  = Int[int32]
	Int64  = Int[int64]
	Uint8  = Int[uint8]
	Uint16 = Int[uint16]
	Uint32 = Int[uint32]
	Uint64 = Int[uint64]
)

func (Int[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (Int[T]) Discrete() bool { return true }

func (Int[T]) Step(p T, n int) (T, error) {
	lo, hi := limits[T]()
	if n >= 0 {
		// distances are exact in uint64 for every width, signed or not
		if uint64(n) > uint64(hi)-uint64(p) {
			return p, errors.Wrapf(ErrOutOfRange, "%d + %d", p, n)
		}
		return T(uint64(p) + uint64(n)), nil
	}
	m := uint64(-(n + 1)) + 1
	if m > uint64(p)-uint64(lo) {
		return p, errors.Wrapf(ErrOutOfRange, "%d - %d", p, m)
	}
	return T(uint64(p) - m), nil
}

func (Int[T]) Normalize(p T) (T, error) { return p, nil }

func (Int[T]) Format(p T) string {
	if signed[T]() {
		return strconv.FormatInt(int64(p), 10)
	}
	return strconv.FormatUint(uint64(p), 10)
}

func (Int[T]) Parse(s string) (T, error) {
	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if int64(T(v)) != v {
			return 0, errors.Wrapf(ErrOutOfRange, "%q", s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(v)) != v {
		return 0, errors.Wrapf(ErrOutOfRange, "%q", s)
	}
	return T(v), nil
}

// Size returns the number of integers in [from, to). The count is a uint64 so
// that it cannot overflow for any width.
func (Int[T]) Size(from, to T) uint64 { return uint64(to) - uint64(from) }

// limits returns the smallest and the largest value of T.
func limits[T constraints.Integer]() (lo, hi T) {
	hi = ^T(0)
	if signed[T]() {
		hi = T(1)<<(8*unsafe.Sizeof(hi)-1) - 1
		lo = -hi - 1
	}
	return lo, hi
}

func signed[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// RangeFrom builds the integer interval from, to with the given bound spec.
func RangeFrom[T constraints.Integer](from, to T, spec string) (interval.Interval[T, Int[T]], error) {
	return interval.New[T, Int[T]](from, to, spec)
}

// ParseRange parses integer interval text such as "[1,10)".
func ParseRange[T constraints.Integer](s string) (interval.Interval[T, Int[T]], error) {
	return interval.Parse[T, Int[T]](s)
}
