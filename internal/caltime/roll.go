package caltime

import "math"

/*
RollOffset applies a signed offset in seconds to a time of day and
reports how many whole days the result rolled over. The offset may be
negative or exceed a day. The returned day delta uses floored division,
so the remainder is always in [0, 86400) and the hour/minute/second
decomposition stays valid even for negative totals.

The day delta must be applied on the MJD axis (shift the pivot, then
reconvert with FromMJD), never by touching month or day fields directly;
month lengths and leap years are then handled in one place.
*/
func RollOffset(hour, minute int, second, offsetSeconds float64) (dayDelta int, h, m int, s float64) {
	total := float64(hour)*3600 + float64(minute)*60 + second + offsetSeconds

	dayDelta = int(math.Floor(total / SecondsPerDay))
	remainder := total - float64(dayDelta)*SecondsPerDay

	h = int(remainder / 3600)
	remainder = math.Mod(remainder, 3600)
	m = int(remainder / 60)
	s = math.Mod(remainder, 60)

	return dayDelta, h, m, s
}
