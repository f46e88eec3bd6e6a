package make_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type ReservationService interface {
	MakeReservation(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
