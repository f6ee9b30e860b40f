package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// ParseDateParam парсит дату из параметра запроса: принимается полная дата
// ("2025-10-15") либо канонический вид без года ("15 October").
func ParseDateParam(s string) (types.DayMonth, error) {
	if s == "" {
		return types.DayMonth{}, fmt.Errorf("date parameter is required")
	}
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return types.NewDayMonth(t), nil
	}
	return types.NewDayMonthFromString(s)
}
