package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request входные данные для создания бронирования.
// Date передается полной датой с годом: окно бронирования считается
// от текущего дня, в хранилище дата попадает уже без года.
type Request struct {
	Date time.Time
	Room string
	Desk string
	User string
}

// Response результат успешного создания бронирования
type Response struct {
	Booking domain.Booking
}
