// Package dates implements the calendar arithmetic used by the subscription
// scheduler. The rules are explicit rather than delegated to database
// interval math so they can be unit tested and documented.
package dates

import "time"

// AddCalendarMonth advances t by exactly one calendar month, preserving the
// day-of-month. When the target month is shorter than t's day, the result
// clamps to the last day of the target month (Jan 31 -> Feb 28, or Feb 29 in
// leap years). Time of day and location are preserved.
func AddCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
