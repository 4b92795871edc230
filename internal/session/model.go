package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "planner session not found")

	// ErrSkip is returned by an update function to leave the stored state untouched.
	// Store.Update then returns the current state together with ErrSkip.
	ErrSkip = errors.New("session update skipped")
)

// State is the current selection of one planner session.
// Occupancy belongs to the (CourtID, Date) pair and is only written by the
// load that was issued for the current Generation.
type State struct {
	ID          string    `json:"id"`
	CommunityID int64     `json:"community_id,omitempty"`
	CourtID     int64     `json:"court_id,omitempty"`
	Date        string    `json:"date,omitempty"` // YYYY-MM-DD
	Generation  uint64    `json:"generation"`
	Occupancy   []int64   `json:"occupancy,omitempty"`
	Loading     bool      `json:"loading"`
	Submitting  bool      `json:"submitting"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	if s.Occupancy != nil {
		c.Occupancy = append([]int64(nil), s.Occupancy...)
	}
	return &c
}
