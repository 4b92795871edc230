package planner

import (
	"time"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
	"github.com/nekogravitycat/court-booking-planner/internal/reservation"
)

// ValidateAndBuildReservation checks a selection before anything is sent to the API.
// Zero IDs and a nil date count as unset. occ is the occupancy known for (courtID, date);
// the check against it is advisory, the API decides conflicts.
func ValidateAndBuildReservation(courtID int64, date *time.Time, slotID int64, occ OccupancySet) (reservation.Draft, error) {
	if courtID == 0 || date == nil || slotID == 0 {
		return reservation.Draft{}, reservation.ErrMissingSelection
	}
	if occ.Has(slotID) {
		return reservation.Draft{}, reservation.ErrSlotNotFree
	}

	return reservation.Draft{
		CourtID:    courtID,
		Date:       clock.FormatDate(*date),
		TimeSlotID: slotID,
	}, nil
}
