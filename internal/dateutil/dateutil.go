package dateutil

import (
	"fmt"
	"time"
)

// DayKeyLayout is the wire format for calendar days ("YYYY-MM-DD").
const DayKeyLayout = "2006-01-02"

// Day is a calendar day with no time-of-day component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDay parses a "YYYY-MM-DD" string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Key renders the day in "YYYY-MM-DD" form.
func (d Day) Key() string {
	return d.Time().Format(DayKeyLayout)
}

// Time returns midnight local time on the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the first of the month,
// 0 = Sunday through 6 = Saturday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DayOfYear returns the 1-based ordinal day of t within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DaysRemainingInMonth returns how many full days are left in t's
// month after t's calendar day. The last day of the month yields 0.
func DaysRemainingInMonth(t time.Time) int {
	remaining := DaysInMonth(t.Year(), t.Month()) - t.Day()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysRemainingInYear returns how many full days are left in t's year
// after t's calendar day, counting December 31st itself.
func DaysRemainingInYear(t time.Time) int {
	endOfYear := time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return int(endOfYear.Sub(start).Hours() / 24)
}
