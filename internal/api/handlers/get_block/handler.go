package get_block

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

// Handle GET /api/v1/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := handlers.BlockIDFromPath(r)
	if err != nil {
		h.logger.Warn("GET /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	block, err := h.service.Block(blockID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlockNotFound):
			h.logger.Warn("GET /blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /blocks/{id} - Failed to get block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blocks/{id} - Block retrieved: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBlock(block))
}
