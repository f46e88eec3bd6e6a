package get_block

import "github.com/m04kA/SMC-HotelService/internal/domain"

type BlockService interface {
	Block(id int64) (*domain.Block, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
