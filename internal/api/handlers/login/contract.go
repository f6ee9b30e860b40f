package login

// SessionManager интерфейс менеджера сессий
type SessionManager interface {
	Login(name string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
