package rotation

import (
	"time"
)

// Engineer is one roster member. Immutable after load; the letter is the
// single-character marker used in rendered schedules, seniority seeds the
// initial on-call ordering.
type Engineer struct {
	Name      string
	Letter    string
	Seniority int
	Country   string
	Region    string
}

// Config is the team configuration the whole engine derives from.
type Config struct {
	Engineers    []Engineer
	RotationDays []string
	MandatoryDay string
}

// workweek is the ordered set of days the team can be scheduled on.
var workweek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// dayName returns the English weekday name for a date.
func dayName(date time.Time) string {
	return date.Weekday().String()
}

// isWeekend reports whether the date falls on Saturday or Sunday.
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// workdayOffset returns the Monday-based offset of a workweek day name,
// or -1 when the name is not a workweek day.
func workdayOffset(day string) int {
	for i, d := range workweek {
		if d == day {
			return i
		}
	}
	return -1
}

// NextMonday returns the next Monday on or after the given date.
func NextMonday(from time.Time) time.Time {
	d := midnight(from)
	daysUntil := (8 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, daysUntil)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mod returns the positive remainder of a/b for any a.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
