package availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната отсутствует в каталоге
	ErrRoomNotFound = errors.New("availability: room is not in the catalog")

	// ErrDeskNotFound возвращается, когда стол не входит в список столов комнаты
	ErrDeskNotFound = errors.New("availability: desk is not in the room")
)
