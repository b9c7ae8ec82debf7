// utils/timeutil.go
package utils

import "time"

// TripDateLayout is the calendar-date format used by the trip form.
const TripDateLayout = "2006-01-02"

// ParseTripDate reads a YYYY-MM-DD date at UTC midnight.
func ParseTripDate(s string) (time.Time, error) {
	return time.ParseInLocation(TripDateLayout, s, time.UTC)
}

// InclusiveDayCount counts calendar days from start to end, both included.
// Returns 0 when end is before start.
func InclusiveDayCount(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
