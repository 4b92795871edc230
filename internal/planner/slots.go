package planner

import (
	"time"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/clock"
	"github.com/nekogravitycat/court-booking-planner/internal/timeslot"
)

// Partition splits the slots shown for a day. Elapsed slots appear in neither list.
type Partition struct {
	Free     []timeslot.TimeSlot
	Occupied []timeslot.TimeSlot
}

// PartitionSlots sorts all into free and occupied for day, keeping their input order.
// When day is today (relative to now), a slot whose end is not strictly after now is dropped.
func PartitionSlots(all []timeslot.TimeSlot, occ OccupancySet, day, now time.Time) Partition {
	p := Partition{
		Free:     make([]timeslot.TimeSlot, 0, len(all)),
		Occupied: make([]timeslot.TimeSlot, 0),
	}
	today := clock.SameDay(day, now)

	for _, slot := range all {
		if today && !slot.EndOn(day).After(now) {
			continue
		}
		if occ.Has(slot.ID) {
			p.Occupied = append(p.Occupied, slot)
		} else {
			p.Free = append(p.Free, slot)
		}
	}
	return p
}
