package bookings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

// SortKey ключ сортировки листинга
type SortKey string

const (
	SortByDate SortKey = "date"
	SortByRoom SortKey = "room"
	SortByDesk SortKey = "desk"
)

// ParseSortKey парсит ключ сортировки из строки запроса.
// Пустая строка означает сортировку по дате.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByDate:
		return SortByDate, nil
	case SortByRoom:
		return SortByRoom, nil
	case SortByDesk:
		return SortByDesk, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
	}
}

// Service read-only листинг бронирований для presentation-слоя
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса листинга
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListAll возвращает все бронирования, отсортированные по выбранному
// ключу. На деградировавшем хранилище сырые строки отдаются как есть.
func (s *Service) ListAll(_ context.Context, key SortKey) (*models.BookingListResponse, error) {
	if s.store.Degraded() {
		_, rows := s.store.Raw()
		s.logger.Warn("ListAll: store schema is unrecognized, returning %d raw rows", len(rows))
		return models.FromRawRecords(rows), nil
	}

	list := s.store.All()
	sortBookings(list, key)
	s.logger.Info("ListAll: returning %d bookings sorted by %s", len(list), key)
	return models.FromDomainBookingList(list), nil
}

// ListForUser возвращает бронирования пользователя, отсортированные по
// выбранному ключу. На деградировавшем хранилище строки сопоставляются
// позиционно по колонке пользователя.
func (s *Service) ListForUser(_ context.Context, user string, key SortKey) (*models.BookingListResponse, error) {
	if strings.TrimSpace(user) == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	if s.store.Degraded() {
		_, rows := s.store.Raw()
		var matched [][]string
		for _, row := range rows {
			if len(row) >= 4 && row[3] == user {
				matched = append(matched, row)
			}
		}
		s.logger.Warn("ListForUser: store schema is unrecognized, returning %d raw rows for user=%s",
			len(matched), user)
		return models.FromRawRecords(matched), nil
	}

	list := s.store.All()
	filtered := list[:0]
	for _, b := range list {
		if b.User == user {
			filtered = append(filtered, b)
		}
	}
	sortBookings(filtered, key)
	s.logger.Info("ListForUser: returning %d bookings for user=%s sorted by %s", len(filtered), user, key)
	return models.FromDomainBookingList(filtered), nil
}

// sortBookings сортирует по выбранному ключу, затем по остальным полям,
// чтобы порядок был стабильным между вызовами
func sortBookings(list []domain.Booking, key SortKey) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch key {
		case SortByRoom:
			if a.Room != b.Room {
				return a.Room < b.Room
			}
			if a.Date.Ordinal() != b.Date.Ordinal() {
				return a.Date.Ordinal() < b.Date.Ordinal()
			}
			return a.Desk < b.Desk
		case SortByDesk:
			if a.Desk != b.Desk {
				return a.Desk < b.Desk
			}
			if a.Date.Ordinal() != b.Date.Ordinal() {
				return a.Date.Ordinal() < b.Date.Ordinal()
			}
			return a.Room < b.Room
		default: // SortByDate
			if a.Date.Ordinal() != b.Date.Ordinal() {
				return a.Date.Ordinal() < b.Date.Ordinal()
			}
			if a.Room != b.Room {
				return a.Room < b.Room
			}
			return a.Desk < b.Desk
		}
	})
}
