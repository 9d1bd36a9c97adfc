// Package caltime implements Gregorian calendar arithmetic on the Modified
// Julian Date axis: civil date/time validation, civil <-> MJD conversion,
// day-of-year computation and time-of-day bookkeeping.
package caltime

import (
	"github.com/pkg/errors"
)

const (
	// SecondsPerDay is the number of seconds in a civil day.
	SecondsPerDay = 86400.0

	// SecondsPerWeek is the number of seconds in a week.
	SecondsPerWeek = 604800.0
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
CivilTime is a single instant of a civil timescale, decomposed into
calendar fields. It is a plain value: converters return a fresh copy and
never retain one. Second carries the fractional part, in [0, 60).
*/
type CivilTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, accounting
// for leap years. month must be in 1..12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return daysInMonth[month-1]
}

// Validate checks every field of c against its bound. The day bound
// depends on month and year.
func Validate(c CivilTime) error {
	if c.Month < 1 || c.Month > 12 {
		return errors.Wrapf(ErrOutOfRange, "month must be in 1..12, got %d", c.Month)
	}

	if c.Hour < 0 || c.Hour > 23 {
		return errors.Wrapf(ErrOutOfRange, "hour must be in 0..23, got %d", c.Hour)
	}

	if c.Minute < 0 || c.Minute > 59 {
		return errors.Wrapf(ErrOutOfRange, "minute must be in 0..59, got %d", c.Minute)
	}

	if c.Second < 0 || c.Second >= 60 {
		return errors.Wrapf(ErrOutOfRange, "second must be in [0, 60), got %g", c.Second)
	}

	maxDay := DaysInMonth(c.Year, c.Month)

	if c.Day < 1 || c.Day > maxDay {
		return errors.Wrapf(ErrOutOfRange, "day must be in 1..%d for %04d-%02d, got %d",
			maxDay, c.Year, c.Month, c.Day)
	}

	return nil
}

// DayOfYear returns the 1-based day number of the date within its year,
// so January 1st is 1 and December 31st is 365 (366 in leap years).
func DayOfYear(year, month, day int) (int, error) {
	if err := Validate(CivilTime{Year: year, Month: month, Day: day}); err != nil {
		return 0, err
	}

	doy := day

	for m := 1; m < month; m++ {
		doy += daysInMonth[m-1]
	}

	if month > 2 && IsLeapYear(year) {
		doy++
	}

	return doy, nil
}

// TimeOfDay returns the number of seconds elapsed since midnight,
// in [0, 86400).
func TimeOfDay(hour, minute int, second float64) (float64, error) {
	if hour < 0 || hour > 23 {
		return 0, errors.Wrapf(ErrOutOfRange, "hour must be in 0..23, got %d", hour)
	}

	if minute < 0 || minute > 59 {
		return 0, errors.Wrapf(ErrOutOfRange, "minute must be in 0..59, got %d", minute)
	}

	if second < 0 || second >= 60 {
		return 0, errors.Wrapf(ErrOutOfRange, "second must be in [0, 60), got %g", second)
	}

	return float64(hour)*3600 + float64(minute)*60 + second, nil
}
