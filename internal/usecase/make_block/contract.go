package make_block

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BlockService менеджер бронирований, выделяющий блоки
type BlockService interface {
	MakeBlock(ctx context.Context, size int, checkIn, checkOut time.Time, id int64) (*domain.Block, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
