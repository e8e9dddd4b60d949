package delegation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow_AnchorsAtLocalMidnight(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	at := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC) // 00:30 on June 2nd local

	start, end := DayWindow(at, loc)

	assert.True(t, start.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, loc)))
}

func TestDayWindow_IsHalfOpen(t *testing.T) {
	at := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	start, end := DayWindow(at, time.UTC)

	assert.True(t, InWindow(start, start, end))
	assert.True(t, InWindow(end.Add(-time.Nanosecond), start, end))
	assert.False(t, InWindow(end, start, end), "next midnight belongs to the next day")
	assert.False(t, InWindow(start.Add(-time.Nanosecond), start, end))
}

func TestDayWindow_DSTDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Zagreb")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	start, end := DayWindow(time.Date(2025, 3, 30, 12, 0, 0, 0, loc), loc)
	require.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestDayWindow_NilLocationIsUTC(t *testing.T) {
	at := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	start, _ := DayWindow(at, nil)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
}
