package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrNotFound возвращается, когда бронирование с точным совпадением
	// (дата, комната, стол, пользователь) не найдено
	ErrNotFound = errors.New("cancel_booking: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
