package make_block

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest проверяет размер блока и диапазон дат
func validateRequest(req *Request) error {
	if !domain.IsValidBlockSize(req.Size) {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidSize, req.Size, domain.MinBlockSize, domain.MaxBlockSize)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidRange)
	}

	if _, err := domain.NewDateRange(req.CheckIn, req.CheckOut); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return nil
}
