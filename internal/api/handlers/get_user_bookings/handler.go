package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_bookings"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
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

// Handle GET /api/v1/bookings/my?sort=date|room|desk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	key, err := bookingsService.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.logger.Warn("GET /bookings/my - Invalid sort key: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSortKey)
		return
	}

	result, err := h.service.ListForUser(r.Context(), user, key)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidSortKey)
			return
		}
		h.logger.Error("GET /bookings/my - Failed to list bookings: user=%s, error=%v", user, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, get_bookings.FromServiceResponse(result))
}
