package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
)

// UseCase use case для отмены бронирования стола
type UseCase struct {
	store  BookingStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: user=%s, room=%s, desk=%s, date=%s",
		req.User, req.Room, req.Desk, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Удаление по точному совпадению и атомарная запись.
	// По инварианту уникальности совпадение должно быть ровно одно.
	removed := 0
	err := uc.store.Transact(ctx, func(tx storage.Tx) error {
		removed = tx.Delete(domain.BookingsFilter{
			Date: &req.Date,
			Room: &req.Room,
			Desk: &req.Desk,
			User: &req.User,
		})
		if removed == 0 {
			return ErrNotFound
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			uc.logger.Warn("CancelBooking: no booking matches user=%s, room=%s, desk=%s, date=%s",
				req.User, req.Room, req.Desk, req.Date)
			return nil, ErrNotFound
		case errors.Is(err, storage.ErrSchemaMismatch), errors.Is(err, storage.ErrIO):
			uc.logger.Error("CancelBooking: persist failed, cancellation not committed: %v", err)
			return nil, err
		default:
			uc.logger.Error("CancelBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CancelBooking: cancelled %s in %s on %s for %s (removed=%d)",
		req.Desk, req.Room, req.Date, req.User, removed)

	return &Response{Removed: removed}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.User) == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if req.Room == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if req.Desk == "" {
		return fmt.Errorf("%w: desk is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
