package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const StatusReserved ReservationStatus = "reserved"

// Reservation represents a stay in one room.
// Reservations are immutable once recorded.
type Reservation struct {
	ID              int64
	RoomID          int
	Range           DateRange
	Status          ReservationStatus
	BlockID         *int64 // set when the reservation was made from a block
	NightlyRate     int64
	DiscountPercent int
	CreatedAt       time.Time
}

// NewReservation validates the range and builds a reservation for the room
func NewReservation(id int64, roomID int, dates DateRange, nightlyRate int64) (*Reservation, error) {
	if err := dates.Validate(); err != nil {
		return nil, err
	}
	return &Reservation{
		ID:          id,
		RoomID:      roomID,
		Range:       dates,
		Status:      StatusReserved,
		NightlyRate: nightlyRate,
	}, nil
}

// Nights returns the number of nights of the stay
func (r *Reservation) Nights() int {
	return r.Range.Nights()
}

// Cost returns nights × nightly rate with the block discount applied
func (r *Reservation) Cost() int64 {
	full := int64(r.Nights()) * r.NightlyRate
	if r.DiscountPercent <= 0 {
		return full
	}
	return full * int64(MaxDiscountPercent-r.DiscountPercent) / MaxDiscountPercent
}

// IsFromBlock returns true if the reservation was converted from a block room
func (r *Reservation) IsFromBlock() bool {
	return r.BlockID != nil
}

// Overlaps returns true if the stay shares a night with dates
func (r *Reservation) Overlaps(dates DateRange) bool {
	return r.Range.Overlaps(dates)
}
