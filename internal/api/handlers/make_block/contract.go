package make_block

import (
	"context"

	makeBlock "github.com/m04kA/SMC-HotelService/internal/usecase/make_block"
)

type MakeBlockUseCase interface {
	Execute(ctx context.Context, req *makeBlock.Request) (*makeBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
