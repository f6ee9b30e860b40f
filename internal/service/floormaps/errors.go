package floormaps

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната отсутствует в каталоге
	ErrRoomNotFound = errors.New("floormaps: room is not in the catalog")

	// ErrMapNotFound возвращается, когда для комнаты нет файла плана этажа.
	// Отсутствие картинки считается штатной ситуацией отображения, не сбоем ядра.
	ErrMapNotFound = errors.New("floormaps: floor map image not found")
)
