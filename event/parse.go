package event

import "time"

// InvalidTime is the sentinel returned for input that cannot be parsed. It is
// a fixed instant after every representable calendar date, so range and
// overlap checks reject it without special-casing, and it never equals a
// successfully parsed instant (parsed instants are always whole minutes).
var InvalidTime = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

// IsValid reports whether t is a real parsed instant rather than the sentinel.
func IsValid(t time.Time) bool {
	return !t.Equal(InvalidTime)
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM time into a single
// local instant. Empty, malformed or out-of-range input yields InvalidTime.
func ParseDateTime(dateStr, timeStr string) time.Time {
	if dateStr == "" || timeStr == "" {
		return InvalidTime
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, time.Local)
	if err != nil {
		return InvalidTime
	}
	return t
}

// ParseDate parses a YYYY-MM-DD date as midnight local time, with the same
// sentinel behavior as ParseDateTime.
func ParseDate(dateStr string) time.Time {
	if dateStr == "" {
		return InvalidTime
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return InvalidTime
	}
	return t
}

// DateRange is the concrete start/end instant pair of an event. It is derived
// on demand and never stored.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ToDateRange converts an event's date and time strings into a DateRange. If
// either endpoint fails to parse, both endpoints are InvalidTime; the range is
// never partially populated.
func ToDateRange(ev Event) DateRange {
	start := ParseDateTime(ev.Date, ev.StartTime)
	end := ParseDateTime(ev.Date, ev.EndTime)
	if !IsValid(start) || !IsValid(end) {
		return DateRange{Start: InvalidTime, End: InvalidTime}
	}
	return DateRange{Start: start, End: end}
}
