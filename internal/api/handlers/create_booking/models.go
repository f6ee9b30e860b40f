package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Room string `json:"room"`
	Desk string `json:"desk"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Date string `json:"date"` // "15 October", канонический вид без года
	Room string `json:"room"`
	Desk string `json:"desk"`
	User string `json:"user"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Имя пользователя берется из сессии, не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(user string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date: date,
		Room: r.Room,
		Desk: r.Desk,
		User: user,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Date: resp.Booking.Date.String(),
		Room: resp.Booking.Room,
		Desk: resp.Booking.Desk,
		User: resp.Booking.User,
	}
}
