package cancel_booking

import (
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// Request входные данные для отмены бронирования.
// Совпадение ищется по полному равенству всех четырех полей.
type Request struct {
	Date types.DayMonth
	Room string
	Desk string
	User string
}

// Response результат успешной отмены
type Response struct {
	Removed int
}
