package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityService_SetAvailabilityRange_OverwritesRange(t *testing.T) {
	h := newHarness(t)

	_, err := h.availability.SetAvailabilityRange(t.Context(), SetAvailabilityRangeInput{
		RefereeID: "ref-01",
		From:      june(1),
		To:        june(5),
		Available: false,
		Reason:    "training camp",
	})
	require.NoError(t, err)

	records, err := h.availability.SetAvailabilityRange(t.Context(), SetAvailabilityRangeInput{
		RefereeID: "ref-01",
		From:      june(1),
		To:        june(3),
		Available: true,
		Reason:    "ignored when available",
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Empty(t, records[0].Reason)

	calendar, err := h.availability.GetCalendar(t.Context(), "ref-01", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), june(6))
	require.NoError(t, err)
	require.Len(t, calendar, 7)

	tests := []struct {
		idx       int
		available bool
		explicit  bool
		reason    string
	}{
		{idx: 0, available: true, explicit: false},
		{idx: 1, available: true, explicit: true},
		{idx: 2, available: true, explicit: true},
		{idx: 3, available: true, explicit: true},
		{idx: 4, available: false, explicit: true, reason: "training camp"},
		{idx: 5, available: false, explicit: true, reason: "training camp"},
		{idx: 6, available: true, explicit: false},
	}
	for _, tc := range tests {
		entry := calendar[tc.idx]
		assert.Equal(t, tc.available, entry.Available, "day %s", entry.Date.Format("2006-01-02"))
		assert.Equal(t, tc.explicit, entry.Explicit, "day %s", entry.Date.Format("2006-01-02"))
		assert.Equal(t, tc.reason, entry.Reason, "day %s", entry.Date.Format("2006-01-02"))
	}
}

func TestAvailabilityService_SetAvailabilityRange_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   SetAvailabilityRangeInput
		wantErr error
	}{
		{name: "inverted", input: SetAvailabilityRangeInput{RefereeID: "ref-01", From: june(5), To: june(1)}, wantErr: ErrInvalidInput},
		{name: "missing bound", input: SetAvailabilityRangeInput{RefereeID: "ref-01", From: june(5)}, wantErr: ErrInvalidInput},
		{name: "too long", input: SetAvailabilityRangeInput{RefereeID: "ref-01", From: june(1), To: june(1).AddDate(2, 0, 0)}, wantErr: ErrInvalidInput},
		{name: "unknown referee", input: SetAvailabilityRangeInput{RefereeID: "ref-99", From: june(1), To: june(2)}, wantErr: ErrNotFound},
		{name: "missing referee", input: SetAvailabilityRangeInput{From: june(1), To: june(2)}, wantErr: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.availability.SetAvailabilityRange(t.Context(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAvailabilityService_SetAndClearSingleDay(t *testing.T) {
	h := newHarness(t)

	record, err := h.availability.SetAvailability(t.Context(), SetAvailabilityInput{
		RefereeID: "ref-02",
		Date:      time.Date(2025, 6, 4, 18, 45, 0, 0, time.UTC),
		Available: false,
		Reason:    " exam ",
	})
	require.NoError(t, err)
	assert.True(t, record.Date.Equal(june(4)))
	assert.Equal(t, "exam", record.Reason)
	assert.True(t, record.UpdatedAt.Equal(testNow))

	calendar, err := h.availability.GetCalendar(t.Context(), "ref-02", june(4), june(4))
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.False(t, calendar[0].Available)

	require.NoError(t, h.availability.ClearAvailability(t.Context(), "ref-02", june(4)))
	require.NoError(t, h.availability.ClearAvailability(t.Context(), "ref-02", june(4)))

	calendar, err = h.availability.GetCalendar(t.Context(), "ref-02", june(4), june(4))
	require.NoError(t, err)
	assert.True(t, calendar[0].Available)
	assert.False(t, calendar[0].Explicit)

	err = h.availability.ClearAvailability(t.Context(), "ref-99", june(4))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAvailabilityService_GetMonthCalendar(t *testing.T) {
	h := newHarness(t)

	calendar, err := h.availability.GetMonthCalendar(t.Context(), "ref-03", 2024, time.February)
	require.NoError(t, err)
	require.Len(t, calendar, 29)
	assert.Equal(t, "2024-02-01", calendar[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", calendar[28].Date.Format("2006-01-02"))

	_, err = h.availability.GetMonthCalendar(t.Context(), "ref-03", 2024, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
