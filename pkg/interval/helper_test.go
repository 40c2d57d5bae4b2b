package interval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/point/float"
	"github.com/henderiw/interval/pkg/point/integer"
	"github.com/stretchr/testify/require"
)

type (
	intRange   = interval.Interval[int64, integer.Int64]
	floatRange = interval.Interval[float64, float.Float64]
)

func ints(t *testing.T, s string) intRange {
	t.Helper()
	iv, err := integer.ParseRange[int64](s)
	require.NoError(t, err, s)
	return iv
}

func floats(t *testing.T, s string) floatRange {
	t.Helper()
	iv, err := float.ParseRange[float64](s)
	require.NoError(t, err, s)
	return iv
}

var equalIntervals = cmp.Options{
	cmp.Comparer(func(a, b intRange) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b floatRange) bool { return a.Equal(b) }),
}

// specs are all bound specs a raw interval can be built with.
var specs = []string{"[]", "[)", "(]", "()", "[", "(", "]", ")", ""}

func genInts() []intRange {
	var out []intRange
	for l := int64(-2); l <= 3; l++ {
		for r := int64(-2); r <= 3; r++ {
			for _, spec := range specs {
				if iv, err := integer.RangeFrom(l, r, spec); err == nil {
					out = append(out, iv)
				}
			}
		}
	}
	return out
}

func genFloats() []floatRange {
	points := []float64{0, 0.5, 1, 1.5, 2}
	var out []floatRange
	for _, l := range points {
		for _, r := range points {
			for _, spec := range specs {
				if iv, err := float.RangeFrom(l, r, spec); err == nil {
					out = append(out, iv)
				}
			}
		}
	}
	return out
}
