package date

import (
	"time"

	"github.com/henderiw/interval/pkg/interval"
)

// Layout is the text form of a date point.
const Layout = "2006-01-02"

// Date is the discrete domain of calendar days. Points are time.Time values
// at midnight UTC; Normalize takes the calendar day of a time in its own
// location.
type Date struct{}

func (Date) Compare(a, b time.Time) int { return a.Compare(b) }

func (Date) Discrete() bool { return true }

func (Date) Step(p time.Time, n int) (time.Time, error) {
	return p.AddDate(0, 0, n), nil
}

func (Date) Normalize(p time.Time) (time.Time, error) {
	y, m, d := p.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (Date) Format(p time.Time) string { return p.Format(Layout) }

func (Date) Parse(s string) (time.Time, error) { return time.Parse(Layout, s) }

// Size returns the number of days in [from, to).
func (Date) Size(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Of returns the date point for a calendar day.
func Of(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RangeFrom builds the date interval from, to with the given bound spec.
func RangeFrom(from, to time.Time, spec string) (interval.Interval[time.Time, Date], error) {
	return interval.New[time.Time, Date](from, to, spec)
}

// ParseRange parses date interval text such as "[2024-01-01,2024-02-01)".
func ParseRange(s string) (interval.Interval[time.Time, Date], error) {
	return interval.Parse[time.Time, Date](s)
}
