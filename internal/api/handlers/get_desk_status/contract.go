package get_desk_status

import (
	"github.com/m04kA/SMC-DeskBookingService/internal/service/availability"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	DeskStatuses(date types.DayMonth, room string) ([]availability.DeskStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
