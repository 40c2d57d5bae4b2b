package interval_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/point/float"
	"github.com/henderiw/interval/pkg/point/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInteger(t *testing.T) {
	cases := map[string]struct {
		left, right int64
		spec        string
		want        string
	}{
		"ClosedClosed":         {left: 1, right: 3, spec: "[]", want: "[1,4)"},
		"OpenClosed":           {left: 1, right: 3, spec: "(]", want: "[2,4)"},
		"OpenOpen":             {left: 1, right: 3, spec: "()", want: "[2,3)"},
		"ClosedOpen":           {left: 1, right: 3, spec: "[)", want: "[1,3)"},
		"NoIntegerInBetween":   {left: 1, right: 2, spec: "()", want: "empty"},
		"SinglePoint":          {left: 1, right: 1, spec: "[]", want: "[1,2)"},
		"SinglePointOpenLeft":  {left: 1, right: 1, spec: "(]", want: "empty"},
		"SinglePointOpenRight": {left: 1, right: 1, spec: "[)", want: "empty"},
		"RightUnbounded":       {left: 1, right: 0, spec: "[", want: "[1,"},
		"RightUnboundedOpen":   {left: 1, right: 0, spec: "(", want: "[2,"},
		"LeftUnbounded":        {left: 9, right: 3, spec: ")", want: ",3)"},
		"LeftUnboundedClosed":  {left: 9, right: 3, spec: "]", want: ",4)"},
		"Unbounded":            {left: 9, right: 3, spec: "", want: ","},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			iv, err := integer.RangeFrom(tc.left, tc.right, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, iv.String())
		})
	}
}

func TestNewFloat(t *testing.T) {
	cases := map[string]struct {
		left, right float64
		spec        string
		want        string
	}{
		"BoundsKept":   {left: 1.5, right: 2, spec: "(]", want: "(1.5,2]"},
		"SinglePoint":  {left: 1, right: 1, spec: "[]", want: "[1,1]"},
		"EmptyPoint":   {left: 1, right: 1, spec: "(]", want: "empty"},
		"EmptyPoint2":  {left: 1, right: 1, spec: "()", want: "empty"},
		"NoDiscretion": {left: 1, right: 2, spec: "()", want: "(1,2)"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			iv, err := float.RangeFrom(tc.left, tc.right, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, iv.String())
		})
	}
}

func TestNewErrors(t *testing.T) {
	cases := map[string]func() error{
		"LeftGreaterThanRight": func() error {
			_, err := integer.RangeFrom[int64](3, 1, "[]")
			return err
		},
		"InvalidSpec": func() error {
			_, err := integer.RangeFrom[int64](1, 3, "[x")
			return err
		},
		"SpecTooLong": func() error {
			_, err := integer.RangeFrom[int64](1, 3, "[))")
			return err
		},
		"Overflow": func() error {
			_, err := integer.RangeFrom[int64](1, math.MaxInt64, "[]")
			return err
		},
		"NaN": func() error {
			_, err := float.RangeFrom(math.NaN(), 1, "[]")
			return err
		},
		"Inf": func() error {
			_, err := float.RangeFrom(0, math.Inf(1), "[]")
			return err
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, interval.ErrInvalid), "%v", err)
		})
	}
}

func TestNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a, err := float.RangeFrom(negZero, 1, "[)")
	require.NoError(t, err)
	b, err := float.RangeFrom(0.0, 1, "[)")
	require.NoError(t, err)
	assert.True(t, a == b)
	assert.Equal(t, "[0,1)", a.String())
}

func TestNewPtr(t *testing.T) {
	one := int64(1)
	iv, err := interval.NewPtr[int64, integer.Int64](&one, nil, "[]")
	require.NoError(t, err)
	assert.Equal(t, "[1,", iv.String())

	iv, err = interval.NewPtr[int64, integer.Int64](nil, nil, "[]")
	require.NoError(t, err)
	assert.Equal(t, interval.All[int64, integer.Int64](), iv)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var iv intRange
	assert.True(t, iv.IsEmpty())
	assert.Equal(t, interval.Empty[int64, integer.Int64](), iv)
	assert.Equal(t, ints(t, "[1,1)"), iv)
	_, _, ok := iv.Endpoints()
	assert.False(t, ok)
}

func TestAccessors(t *testing.T) {
	iv := ints(t, "[1,")
	assert.True(t, iv.IsUnbounded())
	assert.False(t, iv.IsLeftUnbounded())
	assert.True(t, iv.IsRightUnbounded())

	left, right, ok := iv.Endpoints()
	require.True(t, ok)
	assert.Equal(t, interval.At(interval.Inclusive, int64(1)), left)
	assert.True(t, right.IsUnbounded())

	assert.True(t, ints(t, "[4,4]").IsPoint())
	assert.False(t, ints(t, "[4,6)").IsPoint())
	assert.True(t, floats(t, "[4,4]").IsPoint())
	assert.False(t, floats(t, "[4,5]").IsPoint())
	assert.False(t, ints(t, "empty").IsPoint())
}

func TestIdempotence(t *testing.T) {
	for _, iv := range genInts() {
		left, right, ok := iv.Endpoints()
		if !ok {
			continue
		}
		again, err := interval.NewFromEndpoints[int64, integer.Int64](left, right)
		require.NoError(t, err)
		assert.Equal(t, iv, again)
	}
	for _, iv := range genFloats() {
		left, right, ok := iv.Endpoints()
		if !ok {
			continue
		}
		again, err := interval.NewFromEndpoints[float64, float.Float64](left, right)
		require.NoError(t, err)
		assert.Equal(t, iv, again)
	}
}

func TestDiscreteCanonicalForm(t *testing.T) {
	for _, iv := range genInts() {
		left, right, ok := iv.Endpoints()
		if !ok {
			continue
		}
		assert.False(t, left.IsExclusive(), iv.String())
		assert.False(t, right.IsInclusive(), iv.String())
	}
}

func TestNewFromEndpointsBounds(t *testing.T) {
	_, err := interval.NewFromEndpoints[int64, integer.Int64](interval.At(interval.Bound(7), int64(1)), interval.At(interval.Exclusive, int64(5)))
	assert.True(t, errors.Is(err, interval.ErrInvalid), "got %v", err)

	_, err = interval.NewFromEndpoints[float64, float.Float64](interval.At(interval.Inclusive, 1.0), interval.At(interval.Bound(3), 2.0))
	assert.True(t, errors.Is(err, interval.ErrInvalid), "got %v", err)

	// a zero bound is unbounded whatever point it carries
	iv, err := interval.NewFromEndpoints[int64, integer.Int64](interval.At(interval.Bound(0), int64(9)), interval.At(interval.Exclusive, int64(5)))
	require.NoError(t, err)
	assert.True(t, iv == ints(t, ",5)"))
	left, _, _ := iv.Endpoints()
	assert.Equal(t, interval.Unbounded[int64](), left)
}

func TestExclusiveLastPoint(t *testing.T) {
	iv, err := integer.RangeFrom[int64](math.MaxInt64, 0, "(")
	require.NoError(t, err)
	assert.True(t, iv.IsEmpty())

	iv, err = integer.ParseRange[int64]("(9223372036854775807,9223372036854775807]")
	require.NoError(t, err)
	assert.True(t, iv.IsEmpty())

	u, err := integer.RangeFrom[uint8](255, 0, "(")
	require.NoError(t, err)
	assert.True(t, u.IsEmpty())
}
