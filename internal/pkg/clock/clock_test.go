package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTruncatesInOwnLocation(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 00:30 local is still the previous day in UTC; the local day must win.
	instant := time.Date(2024, 6, 11, 0, 30, 0, 0, madrid)

	day := Day(instant)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, madrid), day)
	assert.Equal(t, "2024-06-11", FormatDate(day))
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(base, time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)))
	assert.False(t, SameDay(base, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-11", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("11/06/2024", time.UTC)
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, instant, Fixed(instant).Now())
}
