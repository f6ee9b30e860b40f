package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// Колонки текущей схемы файла бронирований
var currentHeader = []string{"Date-Month", "Room", "Desk", "User"}

// Известные устаревшие раскладки:
// - "Day-Date": дата с префиксом дня недели ("Monday 06 October")
// - "Date": полная ISO-дата с годом ("2025-10-06"), писалась самой первой версией
var (
	legacyDayDateHeader = []string{"Day-Date", "Room", "Desk", "User"}
	legacyISODateHeader = []string{"Date", "Room", "Desk", "User"}
)

// RecordSet сырое содержимое файла хранилища: заголовок и строки
type RecordSet struct {
	Header []string
	Rows   [][]string
}

// Normalize мигрирует содержимое файла из любой известной устаревшей
// раскладки колонок в текущую {Date-Month, Room, Desk, User}.
//
// Преобразование идемпотентно: набор в текущей раскладке возвращается без
// изменений. Если колонки привести не удалось, исходный набор возвращается
// как есть вместе с ErrSchemaMismatch и никогда не отбрасывается.
func Normalize(rs RecordSet) (RecordSet, error) {
	switch {
	case headerEqual(rs.Header, currentHeader):
		// Уже текущая схема, даты только проверяем
		for i, row := range rs.Rows {
			if len(row) != len(currentHeader) {
				return rs, fmt.Errorf("%w: row %d has %d columns, want %d",
					ErrSchemaMismatch, i+1, len(row), len(currentHeader))
			}
			if _, err := types.NewDayMonthFromString(row[0]); err != nil {
				return rs, fmt.Errorf("%w: row %d: %v", ErrSchemaMismatch, i+1, err)
			}
		}
		return rs, nil

	case headerEqual(rs.Header, legacyDayDateHeader):
		return migrateRows(rs, dayDateToDayMonth)

	case headerEqual(rs.Header, legacyISODateHeader):
		return migrateRows(rs, isoDateToDayMonth)

	default:
		return rs, fmt.Errorf("%w: unknown header %q", ErrSchemaMismatch, strings.Join(rs.Header, ","))
	}
}

// migrateRows переписывает колонку даты каждой строки через convert
func migrateRows(rs RecordSet, convert func(string) (types.DayMonth, error)) (RecordSet, error) {
	out := RecordSet{
		Header: append([]string(nil), currentHeader...),
		Rows:   make([][]string, len(rs.Rows)),
	}

	for i, row := range rs.Rows {
		if len(row) != len(currentHeader) {
			return rs, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrSchemaMismatch, i+1, len(row), len(currentHeader))
		}
		date, err := convert(row[0])
		if err != nil {
			return rs, fmt.Errorf("%w: row %d: %v", ErrSchemaMismatch, i+1, err)
		}
		out.Rows[i] = []string{date.String(), row[1], row[2], row[3]}
	}

	return out, nil
}

// dayDateToDayMonth срезает ведущие токены ("Monday 06 October" -> "06 October")
func dayDateToDayMonth(value string) (types.DayMonth, error) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return types.DayMonth{}, fmt.Errorf("day-date value %q is too short", value)
	}
	return types.NewDayMonthFromString(strings.Join(fields[len(fields)-2:], " "))
}

// isoDateToDayMonth отбрасывает год ("2025-10-06" -> "06 October").
// Полночное время после даты допускается: pandas дописывала его для datetime-колонок.
func isoDateToDayMonth(value string) (types.DayMonth, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), " 00:00:00")
	t, err := parseISODate(trimmed)
	if err != nil {
		return types.DayMonth{}, err
	}
	return types.NewDayMonth(t), nil
}

func parseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func headerEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), b[i]) {
			return false
		}
	}
	return true
}
