// Package storemetrics оборачивает файловое хранилище бронирований,
// записывая prometheus метрики каждой операции.
package storemetrics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	storage "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/bookings"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// BookingStore полный интерфейс хранилища, который декорируется метриками
type BookingStore interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Query(filter domain.BookingsFilter) []domain.Booking
	All() []domain.Booking
	Count() int
	Insert(booking domain.Booking) error
	Delete(filter domain.BookingsFilter) (int, error)
	Transact(ctx context.Context, fn func(tx storage.Tx) error) error
	Degraded() bool
	Raw() ([]string, [][]string)
}

// Recorder интерфейс коллектора метрик хранилища
type Recorder interface {
	ObserveStorageOperation(operation, status string, duration time.Duration)
	SetActiveBookings(n int)
}

// Store декоратор хранилища с метриками. Реализует тот же интерфейс,
// что и само хранилище, и подставляется вместо него при включенных метриках.
type Store struct {
	inner   BookingStore
	metrics Recorder
}

// Wrap оборачивает хранилище коллектором метрик
func Wrap(inner BookingStore, metrics Recorder) *Store {
	return &Store{inner: inner, metrics: metrics}
}

func (s *Store) Load(ctx context.Context) error {
	err := s.observe("load", func() error { return s.inner.Load(ctx) })
	s.metrics.SetActiveBookings(s.inner.Count())
	return err
}

func (s *Store) Save(ctx context.Context) error {
	return s.observe("save", func() error { return s.inner.Save(ctx) })
}

func (s *Store) Query(filter domain.BookingsFilter) []domain.Booking {
	return s.inner.Query(filter)
}

func (s *Store) All() []domain.Booking {
	return s.inner.All()
}

func (s *Store) Count() int {
	return s.inner.Count()
}

func (s *Store) Insert(booking domain.Booking) error {
	err := s.observe("insert", func() error { return s.inner.Insert(booking) })
	s.metrics.SetActiveBookings(s.inner.Count())
	return err
}

func (s *Store) Delete(filter domain.BookingsFilter) (int, error) {
	var removed int
	err := s.observe("delete", func() error {
		var innerErr error
		removed, innerErr = s.inner.Delete(filter)
		return innerErr
	})
	s.metrics.SetActiveBookings(s.inner.Count())
	return removed, err
}

func (s *Store) Transact(ctx context.Context, fn func(tx storage.Tx) error) error {
	err := s.observe("transact", func() error { return s.inner.Transact(ctx, fn) })
	s.metrics.SetActiveBookings(s.inner.Count())
	return err
}

func (s *Store) Degraded() bool {
	return s.inner.Degraded()
}

func (s *Store) Raw() ([]string, [][]string) {
	return s.inner.Raw()
}

func (s *Store) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := statusOK
	if err != nil {
		status = statusError
	}
	s.metrics.ObserveStorageOperation(operation, status, time.Since(start))
	return err
}
