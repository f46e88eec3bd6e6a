package get_block_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const (
	msgInvalidBlockID = "некорректный ID блока"
	msgNotFound       = "блок не найден"
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

// Handle GET /api/v1/blocks/{blockId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := handlers.BlockIDFromPath(r)
	if err != nil {
		h.logger.Warn("GET /blocks/{id}/rooms - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	rooms, err := h.service.CheckBlockAvailability(blockID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlockNotFound):
			h.logger.Warn("GET /blocks/{id}/rooms - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /blocks/{id}/rooms - Failed to check block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blocks/{id}/rooms - Block availability: block_id=%d, available=%d", blockID, len(rooms))
	handlers.RespondJSON(w, http.StatusOK, BlockRoomsResponse{
		BlockID: blockID,
		Count:   len(rooms),
		Rooms:   handlers.FromRooms(rooms),
	})
}
