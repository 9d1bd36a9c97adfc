// Package doy converts between civil time and the day-of-year
// representation, where the day number may carry a fractional part for
// sub-day precision (e.g. 45.5 is noon on day 45).
package doy

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xunhou0222/gnsstime/internal/caltime"
)

// FromCivil returns the day of year with the time of day folded into the
// fractional part.
func FromCivil(c caltime.CivilTime) (float64, error) {
	d, err := caltime.DayOfYear(c.Year, c.Month, c.Day)
	if err != nil {
		return 0, err
	}

	tod, err := caltime.TimeOfDay(c.Hour, c.Minute, c.Second)
	if err != nil {
		return 0, err
	}

	return float64(d) + tod/caltime.SecondsPerDay, nil
}

// ToCivil converts a year and fractional day of year back to a civil
// time. The integer day must be in 1..365, or 1..366 in leap years. The
// month/day split walks the same month length table used by DayOfYear,
// so the two directions cannot disagree.
func ToCivil(year int, doyFraction float64) (caltime.CivilTime, error) {
	d := int(doyFraction)
	frac := doyFraction - float64(d)

	maxDoy := 365

	if caltime.IsLeapYear(year) {
		maxDoy++
	}

	if d < 1 || d > maxDoy {
		return caltime.CivilTime{}, errors.Wrapf(caltime.ErrOutOfRange,
			"day of year must be in 1..%d, got %d", maxDoy, d)
	}

	month := 12
	day := d

	for m := 1; m <= 12; m++ {
		dim := caltime.DaysInMonth(year, m)

		if day <= dim {
			month = m
			break
		}

		day -= dim
	}

	totalSeconds := frac * caltime.SecondsPerDay
	hour := int(totalSeconds / 3600)
	remaining := math.Mod(totalSeconds, 3600)
	minute := int(remaining / 60)
	second := math.Mod(remaining, 60)

	return caltime.CivilTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, nil
}
