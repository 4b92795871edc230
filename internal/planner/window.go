package planner

import (
	"time"

	"github.com/nekogravitycat/court-booking-planner/internal/court"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
)

// DefaultWindowDays is used when neither the court nor its community sets a window length.
const DefaultWindowDays = 2

// Window is the inclusive range of calendar days open for booking.
type Window struct {
	Min time.Time
	Max time.Time
}

// WindowLength resolves the number of days after today that can be booked on c:
// the court's own value, then its community's, then fallback. Negative values count as 0.
func WindowLength(c *court.Court, fallback int) int {
	n := fallback
	switch {
	case c == nil:
	case c.MaxBookingDays != nil:
		n = *c.MaxBookingDays
	case c.Community != nil && c.Community.MaxBookingDays != nil:
		n = *c.Community.MaxBookingDays
	}
	if n < 0 {
		n = 0
	}
	return n
}

// NewWindow returns [today, today+days] where today is now truncated to its calendar day.
func NewWindow(now time.Time, days int) Window {
	today := clock.Day(now)
	return Window{Min: today, Max: today.AddDate(0, 0, days)}
}

// ComputeBookingWindow returns the booking window of c (which may be nil) at instant now.
func ComputeBookingWindow(c *court.Court, now time.Time) Window {
	return NewWindow(now, WindowLength(c, DefaultWindowDays))
}

// Days enumerates every calendar day from Min to Max inclusive, ascending.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Min; !d.After(w.Max); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether day's calendar day lies inside the window.
func (w Window) Contains(day time.Time) bool {
	d := clock.Day(day.In(w.Min.Location()))
	return !d.Before(w.Min) && !d.After(w.Max)
}
