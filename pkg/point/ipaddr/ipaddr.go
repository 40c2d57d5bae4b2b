package ipaddr

import (
	"net/netip"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/interval/pkg/interval"
	"go4.org/netipx"
)

// ErrOutOfRange is returned when stepping past the first or last address of
// an address family.
var ErrOutOfRange = errors.New("ip address out of range")

// Addr is the discrete domain of IP addresses. IPv4 addresses sort before
// IPv6 addresses; IPv4-mapped IPv6 addresses are normalized to IPv4 and
// zones are dropped.
type Addr struct{}

// Range is an interval of IP addresses.
type Range = interval.Interval[netip.Addr, Addr]

func (Addr) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (Addr) Discrete() bool { return true }

func (Addr) Step(p netip.Addr, n int) (netip.Addr, error) {
	start := p
	for ; n > 0; n-- {
		if p = p.Next(); !p.IsValid() {
			return start, errors.Wrapf(ErrOutOfRange, "after %s", start)
		}
	}
	for ; n < 0; n++ {
		if p = p.Prev(); !p.IsValid() {
			return start, errors.Wrapf(ErrOutOfRange, "before %s", start)
		}
	}
	return p, nil
}

func (Addr) Normalize(p netip.Addr) (netip.Addr, error) {
	if !p.IsValid() {
		return p, errors.New("ip address is not valid")
	}
	return p.Unmap().WithZone(""), nil
}

func (Addr) Format(p netip.Addr) string { return p.String() }

func (Addr) Parse(s string) (netip.Addr, error) { return netip.ParseAddr(s) }

// RangeFrom returns the interval [from, to] of addresses.
func RangeFrom(from, to netip.Addr) (Range, error) {
	return interval.New[netip.Addr, Addr](from, to, "[]")
}

// ParseRange parses either interval text such as "[10.0.0.0,10.0.1.0)" or
// an inclusive "from-to" range such as "10.0.0.10-10.0.0.20".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") || s == "empty" {
		return interval.Parse[netip.Addr, Addr](s)
	}
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return Range{}, errors.Mark(err, interval.ErrParse)
	}
	return FromIPRange(r)
}

// FromIPRange converts a netipx range to an interval.
func FromIPRange(r netipx.IPRange) (Range, error) {
	if !r.IsValid() {
		return Range{}, errors.Wrapf(interval.ErrInvalid, "ip range %s", r)
	}
	return RangeFrom(r.From(), r.To())
}

// ToIPRange converts a bounded, non-empty interval whose endpoints belong to
// one address family to a netipx range.
func ToIPRange(iv Range) (netipx.IPRange, error) {
	left, right, ok := iv.Endpoints()
	if !ok {
		return netipx.IPRange{}, errors.Wrap(interval.ErrInvalid, "empty interval has no ip range")
	}
	if left.IsUnbounded() || right.IsUnbounded() {
		return netipx.IPRange{}, errors.Wrapf(interval.ErrUnbounded, "ip range of %s", iv)
	}
	to, err := Addr{}.Step(right.Point(), -1)
	if err != nil {
		return netipx.IPRange{}, err
	}
	r := netipx.IPRangeFrom(left.Point(), to)
	if !r.IsValid() {
		return netipx.IPRange{}, errors.Wrapf(interval.ErrInvalid, "%s spans address families", iv)
	}
	return r, nil
}

// Prefixes returns the minimal set of prefixes covering iv.
func Prefixes(iv Range) ([]netip.Prefix, error) {
	r, err := ToIPRange(iv)
	if err != nil {
		return nil, err
	}
	return r.Prefixes(), nil
}

// FromPrefix returns the interval of addresses in p.
func FromPrefix(p netip.Prefix) (Range, error) {
	return FromIPRange(netipx.RangeOfPrefix(p))
}
