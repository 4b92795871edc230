package planner

import (
	"context"
	"slices"

	"go.uber.org/zap"
)

// OccupancySet holds the time slot IDs already reserved for one court and day.
type OccupancySet map[int64]struct{}

func NewOccupancySet(ids ...int64) OccupancySet {
	set := make(OccupancySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has is safe on a nil set.
func (o OccupancySet) Has(id int64) bool {
	_, ok := o[id]
	return ok
}

// IDs returns the members in ascending order.
func (o OccupancySet) IDs() []int64 {
	ids := make([]int64, 0, len(o))
	for id := range o {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// OccupancySource lists reserved slots for a court and day.
type OccupancySource interface {
	Occupied(ctx context.Context, courtID int64, date string) ([]int64, error)
}

// LoadOccupancy fetches the occupancy of (courtID, date).
// Without a court or a date nothing is requested and the set is empty.
//
// Failures are deliberately fail-open: the error is logged and the empty set is
// returned, so occupied slots are shown as free and the reservation API stays the
// authority on conflicts. This keeps booking usable while the occupancy endpoint is
// down, at the risk of users picking taken slots.
func LoadOccupancy(ctx context.Context, src OccupancySource, logger *zap.Logger, courtID int64, date string) OccupancySet {
	if courtID == 0 || date == "" {
		return NewOccupancySet()
	}

	ids, err := src.Occupied(ctx, courtID, date)
	if err != nil {
		logger.Warn("occupancy fetch failed, treating every slot as free",
			zap.Int64("court_id", courtID),
			zap.String("date", date),
			zap.Error(err),
		)
		return NewOccupancySet()
	}
	return NewOccupancySet(ids...)
}
