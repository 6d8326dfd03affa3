package models

import (
	"fmt"
	"time"
)

// DateLayout is the day-granularity date form used across the API and the
// database. Lexicographic order on this form matches chronological order.
const DateLayout = "2006-01-02"

// ParseDate parses strict "YYYY-MM-DD" text at day granularity.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewFormatError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", s))
	}
	return t, nil
}

// FormatDate renders a time at day granularity.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Weekday names a day of the week in the template's working-days mapping.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the week in template order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf maps a calendar date to its template weekday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
