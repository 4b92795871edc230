package clock

import (
	"time"

	"github.com/jinzhu/now"
)

// DateLayout is the calendar-day format exchanged with the reservation API.
const DateLayout = "2006-01-02"

// Clock supplies the current instant. Callers must ask again for every comparison
// instead of caching the value.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now, reported in a fixed location.
type System struct {
	loc *time.Location
}

// NewSystem creates a system clock that reports times in loc (time.Local when nil).
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.Local
	}
	return &System{loc: loc}
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Location returns the location used for calendar-day arithmetic.
func (s *System) Location() *time.Location {
	return s.loc
}

// Fixed is a Clock that always returns the same instant. Useful in tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Day truncates t to the start of its calendar day in t's own location.
func Day(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b.In(a.Location())))
}

// FormatDate renders the calendar day of t without shifting it to UTC.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a "YYYY-MM-DD" calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
