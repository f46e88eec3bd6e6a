package make_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case для создания группового блока номеров
type UseCase struct {
	service BlockService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(service BlockService, logger Logger) *UseCase {
	return &UseCase{
		service: service,
		logger:  logger,
	}
}

// Execute выполняет use case создания блока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MakeBlock: id=%d, size=%d, check_in=%s, check_out=%s",
		req.ID, req.Size, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MakeBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Выделяем номера
	block, err := uc.service.MakeBlock(ctx, req.Size, req.CheckIn, req.CheckOut, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSize):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
		case errors.Is(err, domain.ErrInvalidRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		case errors.Is(err, domain.ErrDuplicateID):
			uc.logger.Warn("MakeBlock: block id=%d already exists", req.ID)
			return nil, ErrDuplicateID
		case errors.Is(err, domain.ErrNoAvailability):
			uc.logger.Warn("MakeBlock: not enough free rooms for block id=%d", req.ID)
			return nil, fmt.Errorf("%w: %v", ErrNoAvailability, err)
		default:
			uc.logger.Error("MakeBlock: failed to make block id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to make block: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("MakeBlock: successfully created block id=%d, rooms=%v", block.ID, block.RoomIDs())
	return fromBlock(block), nil
}
