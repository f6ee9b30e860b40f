package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	store        BookingStore
	engine       AvailabilityEngine
	catalog      *domain.RoomCatalog
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	engine AvailabilityEngine,
	catalog *domain.RoomCatalog,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		engine:       engine,
		catalog:      catalog,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Занятость стола перепроверяется внутри транзакции хранилища
// непосредственно перед вставкой: это закрывает окно между показом
// свободных столов и подтверждением, но не заменяет межпроцессный лок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, desk=%s, date=%s",
		req.User, req.Room, req.Desk, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты против окна бронирования
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Валидация комнаты и стола против каталога
	if err := validateSelection(uc.catalog, req.Room, req.Desk); err != nil {
		uc.logger.Warn("CreateBooking: selection validation failed: %v", err)
		return nil, err
	}

	date := types.NewDayMonth(req.Date)

	// 4. Дневной лимит: один стол на пользователя в день
	if uc.engine.HasUserBookingOnDate(date, req.User) {
		uc.logger.Warn("CreateBooking: user=%s already has a booking on %s", req.User, date)
		return nil, ErrAlreadyBookedToday
	}

	booking := domain.Booking{
		Date: date,
		Room: req.Room,
		Desk: req.Desk,
		User: req.User,
	}

	// 5. Перепроверка занятости и вставка в одной транзакции хранилища
	err := uc.store.Transact(ctx, func(tx storage.Tx) error {
		taken := tx.Query(domain.BookingsFilter{
			Date: &booking.Date,
			Room: &booking.Room,
			Desk: &booking.Desk,
		})
		if len(taken) > 0 {
			return ErrDeskTaken
		}
		tx.Insert(booking)
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrDeskTaken):
			uc.logger.Warn("CreateBooking: desk taken: room=%s, desk=%s, date=%s",
				req.Room, req.Desk, date)
			return nil, ErrDeskTaken
		case errors.Is(err, storage.ErrSchemaMismatch):
			uc.logger.Warn("CreateBooking: store is read-only: %v", err)
			return nil, err
		case errors.Is(err, storage.ErrIO):
			// Запись не удалась: мутация откачена и не считается зафиксированной
			uc.logger.Error("CreateBooking: persist failed, booking not committed: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: booked %s in %s on %s for %s",
		booking.Desk, booking.Room, booking.Date, booking.User)

	return &Response{Booking: booking}, nil
}
