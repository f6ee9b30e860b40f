package get_bookings

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

// BookingRow строка листинга в HTTP ответе
type BookingRow struct {
	Date string `json:"date"`
	Room string `json:"room"`
	Desk string `json:"desk"`
	User string `json:"user"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingRow `json:"bookings"`
	Degraded bool         `json:"degraded,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	rows := make([]BookingRow, len(resp.Bookings))
	for i, b := range resp.Bookings {
		rows[i] = BookingRow{Date: b.Date, Room: b.Room, Desk: b.Desk, User: b.User}
	}
	return &BookingListResponse{Bookings: rows, Degraded: resp.Degraded}
}
