package timestamp

import (
	"time"

	"github.com/henderiw/interval/pkg/interval"
)

// Layout is the text form of a timestamp point.
const Layout = time.RFC3339Nano

// Timestamp is the continuous domain of instants. Points are normalized to
// UTC without a monotonic clock reading.
type Timestamp struct{}

func (Timestamp) Compare(a, b time.Time) int { return a.Compare(b) }

func (Timestamp) Discrete() bool { return false }

func (Timestamp) Step(p time.Time, _ int) (time.Time, error) {
	return p, interval.ErrContinuous
}

func (Timestamp) Normalize(p time.Time) (time.Time, error) {
	return p.UTC().Round(0), nil
}

func (Timestamp) Format(p time.Time) string { return p.Format(Layout) }

func (Timestamp) Parse(s string) (time.Time, error) { return time.Parse(Layout, s) }

// Size returns the duration between from and to.
func (Timestamp) Size(from, to time.Time) time.Duration { return to.Sub(from) }

// RangeFrom builds the timestamp interval from, to with the given bound spec.
func RangeFrom(from, to time.Time, spec string) (interval.Interval[time.Time, Timestamp], error) {
	return interval.New[time.Time, Timestamp](from, to, spec)
}

// ParseRange parses timestamp interval text.
func ParseRange(s string) (interval.Interval[time.Time, Timestamp], error) {
	return interval.Parse[time.Time, Timestamp](s)
}
