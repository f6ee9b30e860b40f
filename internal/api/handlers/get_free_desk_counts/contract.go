package get_free_desk_counts

import (
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// AvailabilityEngine интерфейс движка доступности
type AvailabilityEngine interface {
	FreeDeskCounts(date types.DayMonth) map[string]int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
