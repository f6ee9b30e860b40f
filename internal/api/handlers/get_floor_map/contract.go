package get_floor_map

// FloorMapResolver интерфейс сервиса планов этажей
type FloorMapResolver interface {
	Resolve(room string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
