package models

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingResponse одна строка листинга бронирований
type BookingResponse struct {
	Date string
	Room string
	Desk string
	User string
}

// BookingListResponse результат листинга бронирований.
// Degraded выставляется, когда файл хранилища не удалось привести к
// текущей схеме: строки тогда отдаются как есть, без сортировки.
type BookingListResponse struct {
	Bookings []BookingResponse
	Degraded bool
}

// FromDomainBooking конвертирует доменную модель в строку листинга
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		Date: b.Date.String(),
		Room: b.Room,
		Desk: b.Desk,
		User: b.User,
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(list []domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(list))
	for i, b := range list {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// FromRawRecords строит деградированный листинг из сырых строк файла.
// Колонки сопоставляются позиционно, недостающие поля остаются пустыми.
func FromRawRecords(rows [][]string) *BookingListResponse {
	out := make([]BookingResponse, len(rows))
	for i, row := range rows {
		padded := make([]string, 4)
		copy(padded, row)
		out[i] = BookingResponse{
			Date: padded[0],
			Room: padded[1],
			Desk: padded[2],
			User: padded[3],
		}
	}
	return &BookingListResponse{Bookings: out, Degraded: true}
}
