package ipaddr

import (
	"net/netip"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/tj/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]struct {
		in      netip.Addr
		want    netip.Addr
		wantErr bool
	}{
		"IPv4":    {in: netip.MustParseAddr("10.0.0.1"), want: netip.MustParseAddr("10.0.0.1")},
		"Mapped":  {in: netip.MustParseAddr("::ffff:10.0.0.1"), want: netip.MustParseAddr("10.0.0.1")},
		"Zone":    {in: netip.MustParseAddr("fe80::1%eth0"), want: netip.MustParseAddr("fe80::1")},
		"Invalid": {in: netip.Addr{}, wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Addr{}.Normalize(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStep(t *testing.T) {
	got, err := Addr{}.Step(netip.MustParseAddr("10.0.0.255"), 2)
	assert.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.1.1"), got)

	got, err = Addr{}.Step(netip.MustParseAddr("10.0.1.0"), -1)
	assert.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.255"), got)

	_, err = Addr{}.Step(netip.MustParseAddr("255.255.255.255"), 1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = RangeFrom(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("255.255.255.255"))
	assert.True(t, errors.Is(err, interval.ErrInvalid))
}

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		text    string
		want    string
		wantErr error
	}{
		"Dash":        {text: "10.0.0.10-10.0.0.20", want: "[10.0.0.10,10.0.0.21)"},
		"Interval":    {text: "[10.0.0.0,10.0.1.0)", want: "[10.0.0.0,10.0.1.0)"},
		"Closed":      {text: "[10.0.0.0,10.0.0.255]", want: "[10.0.0.0,10.0.1.0)"},
		"IPv6":        {text: "2001:db8::-2001:db8::ff", want: "[2001:db8::,2001:db8::100)"},
		"Empty":       {text: "empty", want: "empty"},
		"Reversed":    {text: "10.0.0.20-10.0.0.10", wantErr: interval.ErrParse},
		"MixedFamily": {text: "10.0.0.1-::1", wantErr: interval.ErrParse},
		"BadInterval": {text: "[10.0.0.1,x)", wantErr: interval.ErrParse},
		"NoSeparator": {text: "10.0.0.1", wantErr: interval.ErrParse},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			iv, err := ParseRange(tc.text)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, iv.String())
		})
	}
}

func TestIPRange(t *testing.T) {
	iv, err := ParseRange("10.0.0.10-10.0.0.20")
	assert.NoError(t, err)
	r, err := ToIPRange(iv)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.10-10.0.0.20", r.String())

	back, err := FromIPRange(r)
	assert.NoError(t, err)
	assert.True(t, back.Equal(iv))

	_, err = ToIPRange(Range{})
	assert.True(t, errors.Is(err, interval.ErrInvalid))

	_, err = ToIPRange(interval.All[netip.Addr, Addr]())
	assert.True(t, errors.Is(err, interval.ErrUnbounded))

	mixed, err := interval.New[netip.Addr, Addr](netip.MustParseAddr("10.0.0.1"), netip.MustParseAddr("::1"), "[]")
	assert.NoError(t, err)
	_, err = ToIPRange(mixed)
	assert.True(t, errors.Is(err, interval.ErrInvalid))
}

func TestPrefixes(t *testing.T) {
	iv, err := ParseRange("10.0.0.0-10.0.2.255")
	assert.NoError(t, err)
	got, err := Prefixes(iv)
	assert.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/23"),
		netip.MustParsePrefix("10.0.2.0/24"),
	}, got)

	p, err := FromPrefix(netip.MustParsePrefix("192.168.0.0/30"))
	assert.NoError(t, err)
	assert.Equal(t, "[192.168.0.0,192.168.0.4)", p.String())
	assert.True(t, p.ContainsPoint(netip.MustParseAddr("::ffff:192.168.0.3")))
}
