package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата вне окна [сегодня, сегодня+горизонт]
	ErrInvalidDate = errors.New("create_booking: date is outside the booking horizon")

	// ErrInvalidSelection возвращается, когда комната или стол не входят в каталог
	ErrInvalidSelection = errors.New("create_booking: unknown room or desk")

	// ErrAlreadyBookedToday возвращается, когда у пользователя уже есть бронирование на эту дату
	ErrAlreadyBookedToday = errors.New("create_booking: user already has a booking on this date")

	// ErrDeskTaken возвращается, когда стол уже занят на выбранную дату
	ErrDeskTaken = errors.New("create_booking: desk is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
