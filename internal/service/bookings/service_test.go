package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

type fakeStore struct {
	bookings []domain.Booking
	degraded bool
	header   []string
	raw      [][]string
}

func (f *fakeStore) All() []domain.Booking {
	return append([]domain.Booking(nil), f.bookings...)
}

func (f *fakeStore) Degraded() bool {
	return f.degraded
}

func (f *fakeStore) Raw() ([]string, [][]string) {
	return f.header, f.raw
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDayMonth(t *testing.T, value string) types.DayMonth {
	t.Helper()
	dm, err := types.NewDayMonthFromString(value)
	require.NoError(t, err)
	return dm
}

func booking(t *testing.T, date, room, desk, user string) domain.Booking {
	t.Helper()
	return domain.Booking{Date: mustDayMonth(t, date), Room: room, Desk: desk, User: user}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "", want: SortByDate},
		{input: "date", want: SortByDate},
		{input: "room", want: SortByRoom},
		{input: "desk", want: SortByDesk},
		{input: " Room ", want: SortByRoom},
		{input: "DESK", want: SortByDesk},
		{input: "user", wantErr: true},
		{input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListAllSorting(t *testing.T) {
	store := &fakeStore{bookings: []domain.Booking{
		booking(t, "07 October", "602", "Desk 1", "Carol"),
		booking(t, "06 October", "601", "Desk 2", "Bob"),
		booking(t, "06 October", "601", "Desk 1", "Alice"),
		booking(t, "15 March", "604", "Desk 9", "Dave"),
	}}
	svc := NewService(store, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name  string
		key   SortKey
		order []string
	}{
		{
			name:  "by date",
			key:   SortByDate,
			order: []string{"Dave", "Alice", "Bob", "Carol"},
		},
		{
			name:  "by room",
			key:   SortByRoom,
			order: []string{"Alice", "Bob", "Carol", "Dave"},
		},
		{
			name:  "by desk",
			key:   SortByDesk,
			order: []string{"Alice", "Carol", "Bob", "Dave"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListAll(ctx, tt.key)
			require.NoError(t, err)
			require.Len(t, resp.Bookings, 4)
			assert.False(t, resp.Degraded)

			var users []string
			for _, b := range resp.Bookings {
				users = append(users, b.User)
			}
			assert.Equal(t, tt.order, users)
		})
	}
}

func TestListAllDateRendering(t *testing.T) {
	store := &fakeStore{bookings: []domain.Booking{
		booking(t, "06 October", "601", "Desk 1", "Alice"),
	}}
	svc := NewService(store, nopLogger{})

	resp, err := svc.ListAll(context.Background(), SortByDate)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "06 October", resp.Bookings[0].Date)
}

func TestListForUser(t *testing.T) {
	store := &fakeStore{bookings: []domain.Booking{
		booking(t, "07 October", "602", "Desk 1", "Alice"),
		booking(t, "06 October", "601", "Desk 2", "Bob"),
		booking(t, "06 October", "601", "Desk 1", "Alice"),
	}}
	svc := NewService(store, nopLogger{})
	ctx := context.Background()

	resp, err := svc.ListForUser(ctx, "Alice", SortByDate)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "06 October", resp.Bookings[0].Date)
	assert.Equal(t, "07 October", resp.Bookings[1].Date)

	resp, err = svc.ListForUser(ctx, "Mallory", SortByDate)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	_, err = svc.ListForUser(ctx, "  ", SortByDate)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAllDegradedReturnsRawRows(t *testing.T) {
	store := &fakeStore{
		degraded: true,
		header:   []string{"When", "Where"},
		raw: [][]string{
			{"someday", "somewhere", "some desk", "Alice"},
			{"short row"},
		},
	}
	svc := NewService(store, nopLogger{})

	resp, err := svc.ListAll(context.Background(), SortByDate)
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "someday", resp.Bookings[0].Date)
	assert.Equal(t, "Alice", resp.Bookings[0].User)
	// Короткая строка дополняется пустыми полями
	assert.Equal(t, "short row", resp.Bookings[1].Date)
	assert.Empty(t, resp.Bookings[1].User)
}

func TestListForUserDegradedMatchesUserColumn(t *testing.T) {
	store := &fakeStore{
		degraded: true,
		raw: [][]string{
			{"someday", "601", "Desk 1", "Alice"},
			{"someday", "601", "Desk 2", "Bob"},
			{"short row"},
		},
	}
	svc := NewService(store, nopLogger{})

	resp, err := svc.ListForUser(context.Background(), "Alice", SortByDate)
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Desk 1", resp.Bookings[0].Desk)
}
