package decimal

import (
	"testing"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/shopspring/decimal"
	"github.com/tj/assert"
)

func TestNormalize(t *testing.T) {
	a, err := Decimal{}.Normalize(decimal.RequireFromString("1.50"))
	assert.NoError(t, err)
	b, err := Decimal{}.Normalize(decimal.RequireFromString("1.5"))
	assert.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 0, Decimal{}.Compare(a, b))
}

func TestRange(t *testing.T) {
	a, err := ParseRange("[1.50,3.00)")
	assert.NoError(t, err)
	b, err := RangeFrom(decimal.NewFromFloat(1.5), decimal.NewFromInt(3), "[)")
	assert.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, "[1.5,3)", a.String())

	c, err := ParseRange("[3,4.25]")
	assert.NoError(t, err)
	assert.True(t, a.AdjacentLeftOf(c))
	u, err := a.Union(c)
	assert.NoError(t, err)
	assert.Equal(t, "[1.5,4.25]", u.String())

	n, err := interval.Size[decimal.Decimal](u)
	assert.NoError(t, err)
	assert.True(t, n.Equal(decimal.RequireFromString("2.75")))
}
