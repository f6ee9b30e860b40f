package availability

import (
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// DeskStatus занятость одного стола на конкретную дату
type DeskStatus struct {
	Desk     string
	Booked   bool
	BookedBy string // Пустая строка, если стол свободен
}

// Service вычисляет доступность столов поверх хранилища и каталога комнат
type Service struct {
	store   BookingStore
	catalog *domain.RoomCatalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(store BookingStore, catalog *domain.RoomCatalog, logger Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// FreeDesks возвращает незанятые на дату столы комнаты.
// Порядок совпадает с порядком столов в каталоге.
func (s *Service) FreeDesks(date types.DayMonth, room string) ([]string, error) {
	desks, ok := s.catalog.Desks(room)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	booked := s.bookedDesks(date, room)
	free := make([]string, 0, len(desks))
	for _, desk := range desks {
		if _, taken := booked[desk]; !taken {
			free = append(free, desk)
		}
	}
	return free, nil
}

// IsDeskFree сообщает, свободен ли стол на указанную дату
func (s *Service) IsDeskFree(date types.DayMonth, room, desk string) (bool, error) {
	if !s.catalog.HasRoom(room) {
		return false, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}
	if !s.catalog.HasDesk(room, desk) {
		return false, fmt.Errorf("%w: %q in room %q", ErrDeskNotFound, desk, room)
	}
	matches := s.store.Query(domain.BookingsFilter{
		Date: &date,
		Room: &room,
		Desk: &desk,
	})
	return len(matches) == 0, nil
}

// HasUserBookingOnDate сообщает, есть ли у пользователя бронирование
// на эту дату в любой комнате
func (s *Service) HasUserBookingOnDate(date types.DayMonth, user string) bool {
	matches := s.store.Query(domain.BookingsFilter{
		Date: &date,
		User: &user,
	})
	return len(matches) > 0
}

// FreeDeskCounts возвращает количество свободных столов на дату
// для каждой комнаты каталога
func (s *Service) FreeDeskCounts(date types.DayMonth) map[string]int {
	counts := make(map[string]int, len(s.catalog.Rooms()))
	for _, room := range s.catalog.Rooms() {
		booked := s.bookedDesks(date, room.Code)
		free := 0
		for _, desk := range room.Desks {
			if _, taken := booked[desk]; !taken {
				free++
			}
		}
		counts[room.Code] = free
	}
	return counts
}

// DeskStatuses возвращает занятость каждого стола комнаты на дату
// в порядке каталога, с именем занявшего для занятых столов.
func (s *Service) DeskStatuses(date types.DayMonth, room string) ([]DeskStatus, error) {
	desks, ok := s.catalog.Desks(room)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	bookings := s.store.Query(domain.BookingsFilter{
		Date: ptr.Ptr(date),
		Room: ptr.Ptr(room),
	})
	occupants := make(map[string]string, len(bookings))
	for _, b := range bookings {
		occupants[b.Desk] = b.User
	}

	statuses := make([]DeskStatus, len(desks))
	for i, desk := range desks {
		user, taken := occupants[desk]
		statuses[i] = DeskStatus{Desk: desk, Booked: taken, BookedBy: user}
	}
	return statuses, nil
}

// bookedDesks возвращает множество занятых столов комнаты на дату
func (s *Service) bookedDesks(date types.DayMonth, room string) map[string]struct{} {
	bookings := s.store.Query(domain.BookingsFilter{
		Date: ptr.Ptr(date),
		Room: ptr.Ptr(room),
	})
	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.Desk] = struct{}{}
	}
	return booked
}
