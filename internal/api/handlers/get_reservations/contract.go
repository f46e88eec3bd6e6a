package get_reservations

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type ReservationService interface {
	ReservationsByDate(start, end time.Time) []domain.Reservation
	Reservations() []domain.Reservation
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
