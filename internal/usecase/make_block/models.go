package make_block

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на создание блока
type Request struct {
	ID       int64     // ID блока, задаёт клиент
	Size     int       // Количество номеров
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
}

// Response созданный блок
type Response struct {
	ID              int64
	CheckIn         time.Time
	CheckOut        time.Time
	DiscountPercent int
	Rooms           []domain.BlockRoom
	AvailableRooms  int // номера, ещё не превращённые в бронирования
	CreatedAt       time.Time
}

func fromBlock(block *domain.Block) *Response {
	return &Response{
		ID:              block.ID,
		CheckIn:         block.Range.CheckIn,
		CheckOut:        block.Range.CheckOut,
		DiscountPercent: block.DiscountPercent,
		Rooms:           block.Rooms,
		AvailableRooms:  len(block.AvailableRooms()),
		CreatedAt:       block.CreatedAt,
	}
}
