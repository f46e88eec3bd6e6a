package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type RoomService interface {
	AvailableRooms(start, end time.Time) []domain.Room
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
