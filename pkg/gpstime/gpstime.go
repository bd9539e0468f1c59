// Package gpstime converts GPS week/time-of-week timestamps to calendar time.
package gpstime

import "time"

// gpsEpoch is the start of GPS time, 1980-01-06 00:00:00 UTC.
var gpsEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

const week = 7 * 24 * time.Hour

// Calendar returns the UTC calendar time for a GPS week number, time of week
// in milliseconds, and the current GPS-UTC leap second count.
func Calendar(gpsWeek uint16, itowMS uint32, leapSeconds uint8) time.Time {
	t := gpsEpoch.Add(time.Duration(gpsWeek) * week)
	t = t.Add(time.Duration(itowMS) * time.Millisecond)
	return t.Add(-time.Duration(leapSeconds) * time.Second)
}
