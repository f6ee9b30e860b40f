package bookings

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	All() []domain.Booking
	Degraded() bool
	Raw() ([]string, [][]string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
