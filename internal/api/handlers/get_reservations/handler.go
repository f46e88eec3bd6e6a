package get_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD или \"march 19, 2019\""

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

// Handle GET /api/v1/reservations?start=...&end=...
// Без start возвращается весь журнал бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("start") == "" {
		reservations := h.service.Reservations()
		h.logger.Info("GET /reservations - All reservations listed: count=%d", len(reservations))
		handlers.RespondJSON(w, http.StatusOK, handlers.FromReservations(reservations))
		return
	}

	start, end, err := handlers.ParseDateQuery(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	reservations := h.service.ReservationsByDate(start, end)

	h.logger.Info("GET /reservations - Reservations by date: start=%s, count=%d",
		start.Format(domain.DateFormat), len(reservations))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservations(reservations))
}
