package availability

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// MaxRangeDays bounds a single range write.
	MaxRangeDays = 366
)

var (
	ErrInvertedRange = errors.New("date range is inverted")
	ErrRangeTooLarge = errors.New("date range is too large")
)

// Record is an explicit availability declaration for one referee on one calendar date.
// Date is always the calendar date at 00:00 UTC.
type Record struct {
	RefereeID   string
	Date        time.Time
	IsAvailable bool
	Reason      string
	UpdatedAt   time.Time
}

// DayEntry is one day of a referee calendar.
type DayEntry struct {
	Date      time.Time
	Available bool
	Explicit  bool
	Reason    string
}

// EffectiveAvailability resolves the open-world default: no record means available.
func EffectiveAvailability(record Record, found bool) bool {
	if !found {
		return true
	}
	return record.IsAvailable
}

// Date returns the calendar date of t in its own location, pinned to 00:00 UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateIn returns the calendar date of t as observed in loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Date(t.In(loc))
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateRange checks an inclusive calendar range and returns its length in days.
func ValidateRange(from, to time.Time) (int, error) {
	from, to = Date(from), Date(to)
	if to.Before(from) {
		return 0, fmt.Errorf("%w: %s > %s", ErrInvertedRange, FormatDate(from), FormatDate(to))
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxRangeDays {
		return 0, fmt.Errorf("%w: %d days, max %d", ErrRangeTooLarge, days, MaxRangeDays)
	}
	return days, nil
}

// ExpandRange builds one record per day of the inclusive range.
func ExpandRange(refereeID string, from, to time.Time, available bool, reason string, now time.Time) []Record {
	from, to = Date(from), Date(to)
	out := make([]Record, 0, int(to.Sub(from).Hours()/24)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		out = append(out, Record{
			RefereeID:   refereeID,
			Date:        day,
			IsAvailable: available,
			Reason:      reasonFor(available, reason),
			UpdatedAt:   now,
		})
	}
	return out
}

// BuildCalendar lays explicit records over every day of the inclusive range.
func BuildCalendar(from, to time.Time, records []Record) []DayEntry {
	from, to = Date(from), Date(to)
	byDate := make(map[time.Time]Record, len(records))
	for _, rec := range records {
		byDate[Date(rec.Date)] = rec
	}

	out := make([]DayEntry, 0, int(to.Sub(from).Hours()/24)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		rec, found := byDate[day]
		out = append(out, DayEntry{
			Date:      day,
			Available: EffectiveAvailability(rec, found),
			Explicit:  found,
			Reason:    rec.Reason,
		})
	}
	return out
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1), nil
}

func reasonFor(available bool, reason string) string {
	if available {
		return ""
	}
	return reason
}
