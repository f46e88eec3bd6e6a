package make_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

// MakeReservationRequest HTTP request model
type MakeReservationRequest struct {
	CheckIn  string `json:"checkIn" validate:"required"`  // "2019-03-19" или "march 19, 2019"
	CheckOut string `json:"checkOut" validate:"required"` // "2019-03-23"
}

// Dates разбирает даты заезда и выезда
func (r *MakeReservationRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = handlers.ParseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err = handlers.ParseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkOut: %w", err)
	}
	return checkIn, checkOut, nil
}
