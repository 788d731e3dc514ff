package models

import "time"

// Interval is a half-open stay range [CheckIn, CheckOut). Both ends are
// normalized to UTC midnight so every comparison runs on a single canonical
// date value instead of (year, month, day) components.
type Interval struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

func NewInterval(checkIn, checkOut time.Time) Interval {
	return Interval{
		CheckIn:  CanonicalDate(checkIn),
		CheckOut: CanonicalDate(checkOut),
	}
}

// CanonicalDate truncates a timestamp to its UTC calendar date.
func CanonicalDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether check-in falls strictly before check-out. Equal or
// inverted ranges hold no nights and are rejected.
func (i Interval) Valid() bool {
	return i.CheckIn.Before(i.CheckOut)
}

// Overlaps reports whether two stays share at least one night. Adjacent
// back-to-back stays (one checks out the day the other checks in) do not
// overlap.
func (i Interval) Overlaps(other Interval) bool {
	return other.CheckOut.After(i.CheckIn) && other.CheckIn.Before(i.CheckOut)
}

// Nights returns the number of nights the interval covers.
func (i Interval) Nights() int {
	return int(i.CheckOut.Sub(i.CheckIn).Hours() / 24)
}
