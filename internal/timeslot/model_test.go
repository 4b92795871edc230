package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallClock(t *testing.T) {
	tests := []struct {
		in      string
		want    WallClock
		wantErr bool
	}{
		{in: "08:00", want: WallClock{Hour: 8}},
		{in: "21:30:15", want: WallClock{Hour: 21, Minute: 30, Second: 15}},
		{in: "00:00:00", want: WallClock{}},
		{in: "25:00", wantErr: true},
		{in: "8h", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWallClock(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWallClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWallClockString(t *testing.T) {
	assert.Equal(t, "08:00", WallClock{Hour: 8}.String())
	assert.Equal(t, "21:30:15", WallClock{Hour: 21, Minute: 30, Second: 15}.String())
}

func TestEndOnRollsOverMidnight(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	regular := TimeSlot{ID: 1, Start: WallClock{Hour: 8}, End: WallClock{Hour: 9}}
	assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), regular.EndOn(day))
	assert.Equal(t, time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), regular.Start.On(day))

	late := TimeSlot{ID: 2, Start: WallClock{Hour: 23}, End: WallClock{}}
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), late.EndOn(day))
}
