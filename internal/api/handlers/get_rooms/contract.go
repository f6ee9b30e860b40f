package get_rooms

// FloorMapResolver интерфейс сервиса планов этажей
type FloorMapResolver interface {
	HasMap(room string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
