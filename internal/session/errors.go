package session

import "errors"

var (
	// ErrEmptyName возвращается при попытке входа с пустым именем
	ErrEmptyName = errors.New("session: user name is empty")

	// ErrNameTooLong возвращается, когда имя превышает допустимую длину
	ErrNameTooLong = errors.New("session: user name is too long")

	// ErrNotFound возвращается, когда токен сессии неизвестен или уже отозван
	ErrNotFound = errors.New("session: session not found")
)
