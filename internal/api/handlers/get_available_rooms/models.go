package get_available_rooms

import "github.com/m04kA/SMC-HotelService/internal/api/handlers"

// AvailableRoomsResponse свободные номера на период
type AvailableRoomsResponse struct {
	Start string                  `json:"start"`
	End   string                  `json:"end,omitempty"`
	Count int                     `json:"count"`
	Rooms []handlers.RoomResponse `json:"rooms"`
}
