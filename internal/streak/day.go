package streak

import "time"

// Day is a calendar day in the bucketing timezone. It is an immutable value
// type; day arithmetic goes through Sub rather than mutating a shared
// calendar.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf buckets t into its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	t = t.In(loc)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Sub returns the whole-day difference d - other. The difference is
// computed on UTC midnights so DST transitions in the bucketing timezone
// can't skew it.
func (d Day) Sub(other Day) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b) / (24 * time.Hour))
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
