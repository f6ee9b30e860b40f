package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
	cancelBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты"
	msgNotFound           = "бронирование не найдено"
	msgStoreReadOnly      = "файл бронирований имеет нераспознанный формат, запись недоступна"
	msgSaveFailed         = "не удалось сохранить изменение, отмена не применена"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: user=%s, error=%v", user, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelBooking.ErrNotFound):
			h.logger.Warn("POST /bookings/cancel - Not found: user=%s, room=%s, desk=%s, date=%s",
				user, req.Room, req.Desk, req.Date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, storage.ErrSchemaMismatch):
			h.logger.Warn("POST /bookings/cancel - Store is read-only: %v", err)
			handlers.RespondConflict(w, msgStoreReadOnly)

		case errors.Is(err, storage.ErrIO):
			h.logger.Error("POST /bookings/cancel - Persist failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSaveFailed)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: user=%s, error=%v", user, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: user=%s, room=%s, desk=%s, date=%s",
		user, req.Room, req.Desk, req.Date)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Removed: result.Removed})
}
