package loan

import "time"

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// ShiftMonths moves t by the given number of calendar months and places it on day of the
// resulting month, keeping the clock time. Days past the end of the target month are clamped
// to its last day, so Jan 31 + 1 month is Feb 28 (or 29), never Mar 3.
func ShiftMonths(t time.Time, months, day int) time.Time {
	y, m, _ := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return first.AddDate(0, 0, day-1)
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// IsOverdue reports whether now falls on a calendar day after dueDate. Both are compared in
// the due date's location; any instant on the due date itself is on time.
func IsOverdue(now, dueDate time.Time) bool {
	loc := dueDate.Location()
	return midnight(now, loc).After(midnight(dueDate, loc))
}
