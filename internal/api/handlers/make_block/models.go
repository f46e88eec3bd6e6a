package make_block

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	makeBlock "github.com/m04kA/SMC-HotelService/internal/usecase/make_block"
)

// MakeBlockRequest HTTP request model
type MakeBlockRequest struct {
	ID       *int64 `json:"id" validate:"required"`
	Size     *int   `json:"size" validate:"required"` // границы 2..5 проверяет usecase
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
}

// Dates разбирает даты заезда и выезда
func (r *MakeBlockRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = handlers.ParseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err = handlers.ParseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("checkOut: %w", err)
	}
	return checkIn, checkOut, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MakeBlockRequest) ToUseCaseRequest() (*makeBlock.Request, error) {
	checkIn, checkOut, err := r.Dates()
	if err != nil {
		return nil, err
	}
	return &makeBlock.Request{
		ID:       *r.ID,
		Size:     *r.Size,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

func toBlockResponse(resp *makeBlock.Response) handlers.BlockResponse {
	rooms := make([]handlers.BlockRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, handlers.BlockRoomResponse{RoomID: room.RoomID, Status: string(room.Status)})
	}
	return handlers.BlockResponse{
		ID:              resp.ID,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		DiscountPercent: resp.DiscountPercent,
		Rooms:           rooms,
		AvailableRooms:  resp.AvailableRooms,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
