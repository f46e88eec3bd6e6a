package reserve_block_room

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type BlockService interface {
	ReserveBlockRoom(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
