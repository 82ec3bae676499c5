package dateutil

import "time"

// Midnight truncates t to 00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WorkingDays counts the days in the inclusive range [start, end] that are
// not Saturday or Sunday. Time-of-day is ignored. Returns 0 when start is
// after end.
func WorkingDays(start, end time.Time) int {
	start = Midnight(start)
	end = Midnight(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

// OverlapDays returns the inclusive calendar-day count of the intersection of
// [periodStart, periodEnd] and [rangeStart, rangeEnd], 0 when they do not
// intersect. Weekends count: leave spanning a weekend consumes those days.
func OverlapDays(periodStart, periodEnd, rangeStart, rangeEnd time.Time) int {
	from := Midnight(periodStart)
	if s := Midnight(rangeStart); s.After(from) {
		from = s
	}
	to := Midnight(periodEnd)
	if e := Midnight(rangeEnd); e.Before(to) {
		to = e
	}
	if from.After(to) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
