package get_reservation

import "github.com/m04kA/SMC-HotelService/internal/domain"

type ReservationService interface {
	Reservation(id int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
