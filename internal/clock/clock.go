package clock

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a date range ends before it starts.
var ErrInvalidRange = errors.New("end date is before start date")

// Clock supplies the current time. The engine reads it once per
// operation so every timestamp within one operation is consistent.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// DayOf truncates t to day granularity in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the clock's current date at day granularity.
func Today(c Clock) time.Time {
	return DayOf(c.Now())
}

// ValidMonth reports whether m is a real calendar month.
func ValidMonth(m time.Month) bool {
	return m >= time.January && m <= time.December
}

// InclusiveDaySpan returns the number of calendar days spanned by
// [start, end], counting both endpoints (same day -> 1). Time-of-day is
// ignored. Fails with ErrInvalidRange when end is before start.
func InclusiveDaySpan(start, end time.Time) (int, error) {
	s := DayOf(start)
	e := DayOf(end)
	if e.Before(s) {
		return 0, ErrInvalidRange
	}
	// Walk in 24h steps via AddDate to stay correct across DST changes.
	days := 1
	for d := s; d.Before(e); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days, nil
}

// SameMonth reports whether date falls in the given month and year.
func SameMonth(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}
