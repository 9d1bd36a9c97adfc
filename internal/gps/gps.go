// Package gps converts between UTC civil time and the GPS week / time of
// week representation, and between UTC and Beijing Time (UTC+8).
package gps

import (
	"math"

	"github.com/xunhou0222/gnsstime/internal/caltime"
)

// EpochMJD is the GPS epoch, 1980-01-06 00:00:00 UTC, on the MJD axis.
// The epoch is a Sunday, so day of week 0 is Sunday.
const EpochMJD = 44244.0

// WeekTime is a GPS epoch instant decomposed into week number, time of
// week in seconds and the derived day of week. Week may be negative for
// instants before the epoch.
type WeekTime struct {
	Week int
	TOW  float64
	DOW  int
}

/*
FromUTC converts a UTC civil time to GPS week/TOW/DOW. GPS time leads
UTC by leapSeconds, which the caller resolves from a leap second table;
see ToUTC for why the lookup is not done here. Applying the offset can
push TOW across either end of the week, in which case the week number
is carried or borrowed. Week division is floored, not truncated, so
dates before the GPS epoch still map to a monotonic (week, TOW) pair.
*/
func FromUTC(c caltime.CivilTime, leapSeconds int) (WeekTime, error) {
	mjd, err := caltime.ToMJD(c)
	if err != nil {
		return WeekTime{}, err
	}

	diffDays := mjd - EpochMJD

	week := int(math.Floor(diffDays / 7))
	tow := (diffDays - float64(week)*7) * caltime.SecondsPerDay
	tow += float64(leapSeconds)

	if tow >= caltime.SecondsPerWeek {
		tow -= caltime.SecondsPerWeek
		week++
	} else if tow < 0 {
		tow += caltime.SecondsPerWeek
		week--
	}

	dow := int(math.Floor(tow / caltime.SecondsPerDay))

	return WeekTime{Week: week, TOW: tow, DOW: dow}, nil
}

/*
ToUTC converts a GPS week/TOW pair to UTC civil time. Removing the leap
second offset can make the time of week negative, in which case a week
is borrowed.

The leap second offset is an explicit parameter because resolving it
needs the calendar date, which is exactly what this function computes.
Callers wanting the correct offset convert twice: once with offset 0 to
learn the approximate date, then again with the offset looked up for
that date.
*/
func ToUTC(week int, tow float64, leapSeconds int) caltime.CivilTime {
	utcTow := tow - float64(leapSeconds)
	utcWeek := week

	if utcTow < 0 {
		utcTow += caltime.SecondsPerWeek
		utcWeek--
	}

	totalDays := float64(utcWeek)*7 + utcTow/caltime.SecondsPerDay

	return caltime.FromMJD(EpochMJD + totalDays)
}
