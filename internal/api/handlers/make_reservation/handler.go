package make_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD или \"march 19, 2019\""
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgNoAvailability     = "нет свободных номеров на выбранные даты"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MakeReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	reservations, err := h.service.MakeReservation(r.Context(), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrNoAvailability):
			h.logger.Warn("POST /reservations - No availability: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgNoAvailability)

		default:
			h.logger.Error("POST /reservations - Failed to make reservation: check_in=%s, check_out=%s, error=%v",
				req.CheckIn, req.CheckOut, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.FromReservations(reservations)

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, room_id=%d",
		reservations[0].ID, reservations[0].RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
