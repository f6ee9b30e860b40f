package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// CancelBookingRequest HTTP request model.
// Дата принимается в каноническом виде листинга ("15 October") либо
// полной датой ("2025-10-15"), год в этом случае отбрасывается.
type CancelBookingRequest struct {
	Date string `json:"date"`
	Room string `json:"room"`
	Desk string `json:"desk"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Removed int `json:"removed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(user string) (*cancelBooking.Request, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &cancelBooking.Request{
		Date: date,
		Room: r.Room,
		Desk: r.Desk,
		User: user,
	}, nil
}

func parseDate(s string) (types.DayMonth, error) {
	if date, err := types.NewDayMonthFromString(s); err == nil {
		return date, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return types.DayMonth{}, err
	}
	return types.NewDayMonth(t), nil
}
