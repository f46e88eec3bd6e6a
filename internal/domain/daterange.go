package domain

import (
	"fmt"
	"time"
)

// DateRange is a half-open stay interval [CheckIn, CheckOut).
// The check-out day of one stay may be the check-in day of another.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange builds a range truncated to whole days and validates it
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{
		CheckIn:  DateOnly(checkIn),
		CheckOut: DateOnly(checkOut),
	}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate returns ErrInvalidRange unless CheckOut is strictly after CheckIn
func (r DateRange) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidRange,
			r.CheckIn.Format(DateFormat), r.CheckOut.Format(DateFormat))
	}
	return nil
}

// Overlaps reports whether two ranges share at least one night
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Contains reports whether the night starting at date falls inside the range
func (r DateRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(r.CheckIn) && d.Before(r.CheckOut)
}

// Equal reports whether both ranges cover the same nights
func (r DateRange) Equal(other DateRange) bool {
	return r.CheckIn.Equal(other.CheckIn) && r.CheckOut.Equal(other.CheckOut)
}

// Nights returns the number of whole nights in the range
func (r DateRange) Nights() int {
	return int((r.CheckOut.Unix() - r.CheckIn.Unix()) / secondsPerNight)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(DateFormat) + " - " + r.CheckOut.Format(DateFormat)
}

// DateOnly strips the time of day and normalizes the date to UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
