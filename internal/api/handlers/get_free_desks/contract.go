package get_free_desks

import (
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	FreeDesks(date types.DayMonth, room string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
