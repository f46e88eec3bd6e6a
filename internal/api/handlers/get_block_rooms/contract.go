package get_block_rooms

import "github.com/m04kA/SMC-HotelService/internal/domain"

type BlockService interface {
	CheckBlockAvailability(id int64) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
