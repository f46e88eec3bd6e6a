package get_block_rooms

import "github.com/m04kA/SMC-HotelService/internal/api/handlers"

// BlockRoomsResponse номера блока, ещё доступные для бронирования
type BlockRoomsResponse struct {
	BlockID int64                   `json:"blockId"`
	Count   int                     `json:"count"`
	Rooms   []handlers.RoomResponse `json:"rooms"`
}
