package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWallClock = errors.New("invalid wall-clock time, expected HH:MM or HH:MM:SS")
)

// WallClock is a time of day without a date.
type WallClock struct {
	Hour   int
	Minute int
	Second int
}

// ParseWallClock accepts "HH:MM:SS" and "HH:MM".
func ParseWallClock(s string) (WallClock, error) {
	t, err := time.Parse("15:04:05", s)
	// Fallback: try short format if long format fails
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}
	return WallClock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// On returns the instant this wall-clock time denotes on day, in day's location.
func (w WallClock) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, w.Hour, w.Minute, w.Second, 0, day.Location())
}

// Before reports whether w is earlier in the day than o.
func (w WallClock) Before(o WallClock) bool {
	return w.seconds() < o.seconds()
}

func (w WallClock) String() string {
	if w.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", w.Hour, w.Minute, w.Second)
	}
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

func (w WallClock) seconds() int {
	return w.Hour*3600 + w.Minute*60 + w.Second
}

// TimeSlot is a recurring daily period that can be reserved.
type TimeSlot struct {
	ID          int64
	Start       WallClock
	End         WallClock
	CommunityID *int64
}

// EndOn returns the slot's end instant on day.
// A slot whose end is not after its start (e.g. 23:00-00:00) ends on the following day.
func (s TimeSlot) EndOn(day time.Time) time.Time {
	end := s.End.On(day)
	if !s.Start.Before(s.End) {
		end = s.End.On(day.AddDate(0, 0, 1))
	}
	return end
}

// Filter selects the slots of a court or of a community.
type Filter struct {
	CourtID     int64
	CommunityID int64
}
