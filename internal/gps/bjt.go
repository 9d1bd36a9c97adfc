package gps

import (
	"github.com/xunhou0222/gnsstime/internal/caltime"
)

// Beijing Time is a fixed civil offset of 8 hours ahead of UTC. Leap
// seconds play no role here.
const bjtOffsetSeconds = 8 * 3600

// UTCToBJT converts a UTC civil time to Beijing Time, rolling the date
// forward when the 8 hour shift crosses midnight.
func UTCToBJT(c caltime.CivilTime) (caltime.CivilTime, error) {
	return shift(c, bjtOffsetSeconds)
}

// BJTToUTC converts a Beijing Time civil time back to UTC.
func BJTToUTC(c caltime.CivilTime) (caltime.CivilTime, error) {
	return shift(c, -bjtOffsetSeconds)
}

func shift(c caltime.CivilTime, offsetSeconds float64) (caltime.CivilTime, error) {
	if err := caltime.Validate(c); err != nil {
		return caltime.CivilTime{}, err
	}

	dayDelta, hour, minute, second := caltime.RollOffset(c.Hour, c.Minute, c.Second, offsetSeconds)

	// Date-only pivot; the time of day has already been decomposed above.
	mjd, err := caltime.ToMJD(caltime.CivilTime{Year: c.Year, Month: c.Month, Day: c.Day})
	if err != nil {
		return caltime.CivilTime{}, err
	}

	d := caltime.FromMJD(mjd + float64(dayDelta))

	return caltime.CivilTime{
		Year:   d.Year,
		Month:  d.Month,
		Day:    d.Day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}, nil
}
