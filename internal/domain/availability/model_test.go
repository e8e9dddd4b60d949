package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestEffectiveAvailability(t *testing.T) {
	assert.True(t, EffectiveAvailability(Record{}, false))
	assert.True(t, EffectiveAvailability(Record{IsAvailable: true}, true))
	assert.False(t, EffectiveAvailability(Record{IsAvailable: false}, true))
}

func TestDateIn_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	at := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), DateIn(at, loc))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DateIn(at, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DateIn(at, nil))
}

func TestValidateRange(t *testing.T) {
	days, err := ValidateRange(day(t, "2025-06-01"), day(t, "2025-06-03"))
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	days, err = ValidateRange(day(t, "2025-06-01"), day(t, "2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	_, err = ValidateRange(day(t, "2025-06-03"), day(t, "2025-06-01"))
	assert.ErrorIs(t, err, ErrInvertedRange)

	_, err = ValidateRange(day(t, "2025-01-01"), day(t, "2026-01-03"))
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExpandRange(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	records := ExpandRange("r1", day(t, "2025-06-01"), day(t, "2025-06-03"), false, "holiday", now)

	require.Len(t, records, 3)
	assert.Equal(t, day(t, "2025-06-01"), records[0].Date)
	assert.Equal(t, day(t, "2025-06-03"), records[2].Date)
	for _, rec := range records {
		assert.Equal(t, "r1", rec.RefereeID)
		assert.False(t, rec.IsAvailable)
		assert.Equal(t, "holiday", rec.Reason)
	}

	records = ExpandRange("r1", day(t, "2025-06-01"), day(t, "2025-06-01"), true, "ignored", now)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Reason)
}

func TestBuildCalendar_MonthWithExplicitDays(t *testing.T) {
	from, to, err := MonthRange(2025, time.June)
	require.NoError(t, err)

	records := ExpandRange("r1", day(t, "2025-06-01"), day(t, "2025-06-03"), false, "", time.Now())
	calendar := BuildCalendar(from, to, records)

	require.Len(t, calendar, 30)
	for i, entry := range calendar {
		if i < 3 {
			assert.False(t, entry.Available, entry.Date)
			assert.True(t, entry.Explicit)
			continue
		}
		assert.True(t, entry.Available, entry.Date)
		assert.False(t, entry.Explicit)
	}
}

func TestMonthRange_RejectsInvalidMonth(t *testing.T) {
	_, _, err := MonthRange(2025, 13)
	assert.Error(t, err)

	from, to, err := MonthRange(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 29, to.Day())
}
