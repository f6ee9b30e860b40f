package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
)

const msgInvalidSortKey = "некорректный ключ сортировки, допустимы date, room, desk"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?sort=date|room|desk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key, err := bookingsService.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid sort key: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSortKey)
		return
	}

	result, err := h.service.ListAll(r.Context(), key)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidSortKey)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
