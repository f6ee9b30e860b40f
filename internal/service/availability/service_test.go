package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

type fakeStore struct {
	rows []domain.Booking
}

func (f *fakeStore) Query(filter domain.BookingsFilter) []domain.Booking {
	var matched []domain.Booking
	for _, b := range f.rows {
		if filter.Matches(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDayMonth(t *testing.T, s string) types.DayMonth {
	t.Helper()
	d, err := types.NewDayMonthFromString(s)
	require.NoError(t, err)
	return d
}

func testCatalog(t *testing.T) *domain.RoomCatalog {
	t.Helper()
	catalog, err := domain.NewRoomCatalog([]domain.Room{
		{Code: "601", Desks: []string{"Desk 1", "Desk 2", "Desk 3"}},
		{Code: "602", Desks: []string{"Desk 1", "Desk 2"}},
	})
	require.NoError(t, err)
	return catalog
}

func TestFreeDesksKeepsCatalogOrder(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: date, Room: "601", Desk: "Desk 2", User: "Carol"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	free, err := svc.FreeDesks(date, "601")
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk 1", "Desk 3"}, free)
}

func TestFreeDesksUnknownRoom(t *testing.T) {
	svc := NewService(&fakeStore{}, testCatalog(t), nopLogger{})

	_, err := svc.FreeDesks(mustDayMonth(t, "06 October"), "999")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestFreeDesksIgnoresOtherDatesAndRooms(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: mustDayMonth(t, "07 October"), Room: "601", Desk: "Desk 1", User: "Carol"},
		{Date: date, Room: "602", Desk: "Desk 1", User: "Dave"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	free, err := svc.FreeDesks(date, "601")
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk 1", "Desk 2", "Desk 3"}, free)
}

func TestIsDeskFree(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: date, Room: "601", Desk: "Desk 1", User: "Carol"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	free, err := svc.IsDeskFree(date, "601", "Desk 1")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = svc.IsDeskFree(date, "601", "Desk 2")
	require.NoError(t, err)
	assert.True(t, free)

	_, err = svc.IsDeskFree(date, "999", "Desk 1")
	require.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.IsDeskFree(date, "601", "Desk 99")
	require.ErrorIs(t, err, ErrDeskNotFound)
}

func TestHasUserBookingOnDate(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: date, Room: "601", Desk: "Desk 1", User: "Carol"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	assert.True(t, svc.HasUserBookingOnDate(date, "Carol"))
	assert.False(t, svc.HasUserBookingOnDate(date, "Dave"))
	assert.False(t, svc.HasUserBookingOnDate(mustDayMonth(t, "07 October"), "Carol"))
}

func TestFreeDeskCounts(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: date, Room: "601", Desk: "Desk 1", User: "Carol"},
		{Date: date, Room: "601", Desk: "Desk 2", User: "Dave"},
		{Date: date, Room: "602", Desk: "Desk 1", User: "Erin"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	counts := svc.FreeDeskCounts(date)
	assert.Equal(t, map[string]int{"601": 1, "602": 1}, counts)
}

func TestDeskStatuses(t *testing.T) {
	date := mustDayMonth(t, "06 October")
	store := &fakeStore{rows: []domain.Booking{
		{Date: date, Room: "601", Desk: "Desk 2", User: "Carol"},
	}}
	svc := NewService(store, testCatalog(t), nopLogger{})

	statuses, err := svc.DeskStatuses(date, "601")
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, DeskStatus{Desk: "Desk 1"}, statuses[0])
	assert.Equal(t, DeskStatus{Desk: "Desk 2", Booked: true, BookedBy: "Carol"}, statuses[1])
	assert.Equal(t, DeskStatus{Desk: "Desk 3"}, statuses[2])

	_, err = svc.DeskStatuses(date, "999")
	require.ErrorIs(t, err, ErrRoomNotFound)
}
