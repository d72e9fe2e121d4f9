package weeks

import (
	"time"
)

const daysPerWeek = 7

// Date returns the calendar date y-m-d as a UTC midnight time.
// All calendar dates in this module are represented this way so they can be
// compared and used as map keys.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar date, as seen in t's own location.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// WeekStart returns the Monday of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	// Go's Weekday starts at Sunday=0. Monday is the anchor.
	offset := (int(date.Weekday()) + 6) % daysPerWeek
	return Date(date.Year(), date.Month(), date.Day()-offset)
}

// WeekNumber returns the ISO 8601 week of the year for date (1-53).
func WeekNumber(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// MonthName returns the month that holds the Thursday of date's week.
func MonthName(date time.Time) string {
	return thursdayOf(date).Month().String()
}

func thursdayOf(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, int(time.Thursday)-1)
}

// FirstDayOfWeek converts instant to its local calendar date in loc and
// returns the Monday of that week.
func FirstDayOfWeek(instant time.Time, loc *time.Location) time.Time {
	return WeekStart(instant.In(loc))
}

// FirstDayOfNextWeek returns the Monday following the week instant falls in,
// as seen from loc.
func FirstDayOfNextWeek(instant time.Time, loc *time.Location) time.Time {
	return FirstDayOfWeek(instant, loc).AddDate(0, 0, daysPerWeek)
}

// Midnight returns the instant at which date begins in loc.
func Midnight(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}
