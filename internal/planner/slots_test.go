package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nekogravitycat/court-booking-planner/internal/timeslot"
)

func hourSlot(id int64, start, end int) timeslot.TimeSlot {
	return timeslot.TimeSlot{
		ID:    id,
		Start: timeslot.WallClock{Hour: start},
		End:   timeslot.WallClock{Hour: end},
	}
}

func ids(slots []timeslot.TimeSlot) []int64 {
	out := make([]int64, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ID)
	}
	return out
}

func TestPartitionSlotsFutureDay(t *testing.T) {
	all := []timeslot.TimeSlot{hourSlot(5, 8, 9), hourSlot(6, 9, 10), hourSlot(7, 10, 11)}
	day := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	p := PartitionSlots(all, NewOccupancySet(5, 7), day, now)

	assert.Equal(t, []int64{6}, ids(p.Free))
	assert.Equal(t, []int64{5, 7}, ids(p.Occupied))
}

func TestPartitionSlotsDropsElapsedToday(t *testing.T) {
	all := []timeslot.TimeSlot{hourSlot(1, 8, 9), hourSlot(2, 9, 10), hourSlot(3, 10, 11)}
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	p := PartitionSlots(all, NewOccupancySet(), day, now)

	assert.Equal(t, []int64{2, 3}, ids(p.Free))
	assert.Empty(t, p.Occupied)
}

func TestPartitionSlotsEndingExactlyNowIsElapsed(t *testing.T) {
	all := []timeslot.TimeSlot{hourSlot(1, 8, 9), hourSlot(2, 9, 10)}
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	p := PartitionSlots(all, NewOccupancySet(2), day, now)

	assert.Empty(t, p.Free)
	assert.Equal(t, []int64{2}, ids(p.Occupied))
}

func TestPartitionSlotsLateSlotSurvivesEvening(t *testing.T) {
	all := []timeslot.TimeSlot{hourSlot(1, 23, 0)}
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)

	p := PartitionSlots(all, nil, day, now)

	assert.Equal(t, []int64{1}, ids(p.Free))
}

func TestPartitionSlotsProperties(t *testing.T) {
	all := []timeslot.TimeSlot{
		hourSlot(1, 6, 7), hourSlot(2, 7, 8), hourSlot(3, 8, 9),
		hourSlot(4, 12, 13), hourSlot(5, 18, 19), hourSlot(6, 22, 23),
	}
	occ := NewOccupancySet(2, 4, 6, 99)
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	for hour := 0; hour < 24; hour++ {
		now := day.Add(time.Duration(hour) * time.Hour)
		p := PartitionSlots(all, occ, day, now)

		seen := map[int64]bool{}
		for _, s := range p.Free {
			assert.False(t, occ.Has(s.ID))
			assert.True(t, s.EndOn(day).After(now))
			seen[s.ID] = true
		}
		for _, s := range p.Occupied {
			assert.True(t, occ.Has(s.ID))
			assert.True(t, s.EndOn(day).After(now))
			assert.False(t, seen[s.ID], "slot %d in both lists", s.ID)
		}

		again := PartitionSlots(all, occ, day, now)
		assert.Equal(t, p, again)
	}
}

func TestPartitionSlotsEmptyInput(t *testing.T) {
	p := PartitionSlots(nil, nil, time.Now(), time.Now())

	assert.NotNil(t, p.Free)
	assert.NotNil(t, p.Occupied)
	assert.Empty(t, p.Free)
	assert.Empty(t, p.Occupied)
}
