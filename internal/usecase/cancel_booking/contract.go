package cancel_booking

import (
	"context"

	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Transact(ctx context.Context, fn func(tx storage.Tx) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
