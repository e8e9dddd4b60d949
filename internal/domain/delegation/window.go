package delegation

import "time"

// DayWindow returns the half-open [start, end) window covering the calendar day of at in loc.
// The window is anchored at local midnight, so DST days are 23 or 25 hours long.
func DayWindow(at time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := at.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// InWindow reports whether t falls inside [start, end).
func InWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// UpcomingWindow is the closed interval used by the upcoming-pending statistic.
func UpcomingWindow(now time.Time, span time.Duration) (time.Time, time.Time) {
	return now, now.Add(span)
}
