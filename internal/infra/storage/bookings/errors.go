package bookings

import "errors"

var (
	// ErrIO возвращается при ошибках чтения или записи файла хранилища
	ErrIO = errors.New("bookings.repository: storage i/o error")

	// ErrSchemaMismatch возвращается, когда колонки файла не удалось привести
	// к текущей схеме. Исходные данные при этом сохраняются без изменений.
	ErrSchemaMismatch = errors.New("bookings.repository: unrecognized record schema")

	// ErrNotLoaded возвращается при обращении к хранилищу до вызова Load
	ErrNotLoaded = errors.New("bookings.repository: store is not loaded")
)
