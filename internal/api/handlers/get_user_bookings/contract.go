package get_user_bookings

import (
	"context"

	bookingsService "github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса листинга бронирований
type BookingsService interface {
	ListForUser(ctx context.Context, user string, key bookingsService.SortKey) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
