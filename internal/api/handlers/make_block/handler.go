package make_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	makeBlock "github.com/m04kA/SMC-HotelService/internal/usecase/make_block"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD или \"march 19, 2019\""
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgInvalidSize        = "размер блока должен быть от 2 до 5 номеров"
	msgNoAvailability     = "недостаточно свободных номеров на выбранные даты"
	msgDuplicateID        = "блок с таким ID уже существует"
)

type Handler struct {
	useCase MakeBlockUseCase
	logger  Logger
}

func NewHandler(useCase MakeBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MakeBlockRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /blocks - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blockID, size := useCaseReq.ID, useCaseReq.Size

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, makeBlock.ErrInvalidSize):
			h.logger.Warn("POST /blocks - Invalid size: block_id=%d, size=%d", blockID, size)
			handlers.RespondBadRequest(w, msgInvalidSize)

		case errors.Is(err, makeBlock.ErrInvalidRange):
			h.logger.Warn("POST /blocks - Invalid range: block_id=%d, check_in=%s, check_out=%s",
				blockID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, makeBlock.ErrDuplicateID):
			h.logger.Warn("POST /blocks - Duplicate block ID: block_id=%d", blockID)
			handlers.RespondConflict(w, msgDuplicateID)

		case errors.Is(err, makeBlock.ErrNoAvailability):
			h.logger.Warn("POST /blocks - No availability: block_id=%d, size=%d", blockID, size)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			h.logger.Error("POST /blocks - Failed to make block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: block_id=%d, available_rooms=%d", result.ID, result.AvailableRooms)
	handlers.RespondJSON(w, http.StatusCreated, toBlockResponse(result))
}
