package logout

// SessionManager интерфейс менеджера сессий
type SessionManager interface {
	Logout(token string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
