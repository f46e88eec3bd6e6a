package list_rooms

import "github.com/m04kA/SMC-HotelService/internal/domain"

type RoomService interface {
	AllRooms() []domain.Room
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
