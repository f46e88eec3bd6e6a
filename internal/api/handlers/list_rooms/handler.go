package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := h.service.AllRooms()

	h.logger.Info("GET /rooms - Rooms listed: count=%d", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromRooms(rooms))
}
