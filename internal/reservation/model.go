package reservation

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

var (
	// Local, never sent to the reservation API.
	ErrMissingSelection = apperror.New(http.StatusBadRequest, "court, date and time slot must all be selected")
	ErrSlotNotFree      = apperror.New(http.StatusConflict, "time slot is already reserved")

	// Reported by the reservation API.
	ErrBookingConflict = apperror.New(http.StatusConflict, "time slot was just booked by someone else")
	ErrRequestRejected = apperror.New(http.StatusBadRequest, "reservation request was rejected")
	ErrConnectivity    = apperror.New(http.StatusBadGateway, "could not reach the reservation service, please try again")
)

// Draft is a validated, not yet submitted reservation.
type Draft struct {
	CourtID    int64
	Date       string // YYYY-MM-DD, local calendar day
	TimeSlotID int64
}

// Reservation is a reservation persisted by the reservation API.
type Reservation struct {
	ID         int64
	CourtID    int64
	Date       string
	TimeSlotID int64
	UserID     *int64
	CreatedAt  *time.Time
}
