package get_available_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD или \"march 19, 2019\""

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

// Handle GET /api/v1/rooms/available?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, end, err := handlers.ParseDateQuery(r)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rooms := h.service.AvailableRooms(start, end)

	response := AvailableRoomsResponse{
		Start: start.Format(domain.DateFormat),
		Count: len(rooms),
		Rooms: handlers.FromRooms(rooms),
	}
	if !end.IsZero() {
		response.End = end.Format(domain.DateFormat)
	}

	h.logger.Info("GET /rooms/available - Available rooms: start=%s, count=%d", response.Start, len(rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
