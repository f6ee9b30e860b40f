package create_booking

import (
	"context"
	"time"

	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Transact(ctx context.Context, fn func(tx storage.Tx) error) error
}

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	HasUserBookingOnDate(date types.DayMonth, user string) bool
}

// TimeProvider интерфейс для получения текущего времени (подменяется в тестах)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider поверх системных часов
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
