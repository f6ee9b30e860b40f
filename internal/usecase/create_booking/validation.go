package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.User) == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if len(req.User) > domain.MaxUserNameLen {
		return fmt.Errorf("%w: user name is too long", ErrInvalidInput)
	}
	if req.Room == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if req.Desk == "" {
		return fmt.Errorf("%w: desk is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата попадает в окно [сегодня, сегодня+горизонт].
// Сравниваются только календарные компоненты: дата запроса парсится в UTC,
// а часы сервиса могут идти в другом поясе, поэтому обе стороны
// перестраиваются в поясе часов.
func validateDate(date, now time.Time, horizonDays int) error {
	dateOnly := calendarDay(date, now.Location())
	today := calendarDay(now, now.Location())
	maxDate := today.AddDate(0, 0, horizonDays)

	if dateOnly.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDate, horizonDays)
	}
	return nil
}

// validateSelection проверяет комнату и стол против каталога
func validateSelection(catalog *domain.RoomCatalog, room, desk string) error {
	if !catalog.HasRoom(room) {
		return fmt.Errorf("%w: room %q is not configured", ErrInvalidSelection, room)
	}
	if !catalog.HasDesk(room, desk) {
		return fmt.Errorf("%w: desk %q is not in room %q", ErrInvalidSelection, desk, room)
	}
	return nil
}

// calendarDay перестраивает календарную дату t в указанном поясе
func calendarDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
