package reserve_block_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const (
	msgInvalidBlockID = "некорректный ID блока"
	msgNotFound       = "блок не найден"
	msgNoAvailability = "в блоке не осталось свободных номеров"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks/{blockId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := handlers.BlockIDFromPath(r)
	if err != nil {
		h.logger.Warn("POST /blocks/{id}/reservations - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	reservation, err := h.service.ReserveBlockRoom(r.Context(), blockID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlockNotFound):
			h.logger.Warn("POST /blocks/{id}/reservations - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrNoAvailability):
			h.logger.Warn("POST /blocks/{id}/reservations - Block exhausted: block_id=%d", blockID)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			h.logger.Error("POST /blocks/{id}/reservations - Failed to reserve block room: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks/{id}/reservations - Block room reserved: block_id=%d, reservation_id=%d, room_id=%d",
		blockID, reservation.ID, reservation.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromReservation(reservation))
}
