package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateOutsideWindow  = "дата вне окна бронирования"
	msgInvalidSelection   = "неизвестная комната или стол"
	msgAlreadyBooked      = "у вас уже есть бронирование на эту дату, можно бронировать один стол в день"
	msgDeskTaken          = "стол уже занят на выбранную дату"
	msgStoreReadOnly      = "файл бронирований имеет нераспознанный формат, запись недоступна"
	msgSaveFailed         = "не удалось сохранить бронирование, изменение не применено"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, error=%v", user, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date outside window: user=%s, date=%s", user, req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, createBooking.ErrInvalidSelection):
			h.logger.Warn("POST /bookings - Invalid selection: user=%s, room=%s, desk=%s",
				user, req.Room, req.Desk)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, createBooking.ErrAlreadyBookedToday):
			h.logger.Warn("POST /bookings - Already booked today: user=%s, date=%s", user, req.Date)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrDeskTaken):
			h.logger.Warn("POST /bookings - Desk taken: room=%s, desk=%s, date=%s",
				req.Room, req.Desk, req.Date)
			handlers.RespondConflict(w, msgDeskTaken)

		case errors.Is(err, storage.ErrSchemaMismatch):
			h.logger.Warn("POST /bookings - Store is read-only: %v", err)
			handlers.RespondConflict(w, msgStoreReadOnly)

		case errors.Is(err, storage.ErrIO):
			h.logger.Error("POST /bookings - Persist failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSaveFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", user, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: user=%s, room=%s, desk=%s, date=%s",
		user, response.Room, response.Desk, response.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
