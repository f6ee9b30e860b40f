package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeSessions struct {
	tokens map[string]string
}

func (f *fakeSessions) User(token string) (string, error) {
	name, ok := f.tokens[token]
	if !ok {
		return "", http.ErrNoCookie
	}
	return name, nil
}

// serve прогоняет запрос через Auth middleware и обработчик, как в роутере
func serve(uc CreateBookingUseCase, token, body string) *httptest.ResponseRecorder {
	sessions := &fakeSessions{tokens: map[string]string{"token-alice": "Alice"}}
	handler := middleware.Auth(sessions)(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if token != "" {
		req.Header.Set(middleware.SessionTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreateBooking(t *testing.T) {
	date, err := types.NewDayMonthFromString("15 October")
	require.NoError(t, err)

	uc := &fakeUseCase{resp: &createBooking.Response{}}
	uc.resp.Booking.Date = date
	uc.resp.Booking.Room = "601"
	uc.resp.Booking.Desk = "Desk 3"
	uc.resp.Booking.User = "Alice"

	rec := serve(uc, "token-alice", `{"date": "2025-10-15", "room": "601", "desk": "Desk 3"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Имя берется из сессии, дата распарсена из ISO формата
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Alice", uc.gotReq.User)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format("2006-01-02"))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "15 October", resp.Date)
	assert.Equal(t, "Desk 3", resp.Desk)
}

func TestHandleCreateBookingRequiresSession(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "", `{"date": "2025-10-15", "room": "601", "desk": "Desk 3"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(uc, "bogus-token", `{"date": "2025-10-15", "room": "601", "desk": "Desk 3"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// До use case запрос не дошел
	assert.Nil(t, uc.gotReq)
}

func TestHandleCreateBookingBadDate(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "token-alice", `{"date": "15 October", "room": "601", "desk": "Desk 3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandleCreateBookingErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "date outside window", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid selection", err: createBooking.ErrInvalidSelection, wantStatus: http.StatusBadRequest},
		{name: "already booked today", err: createBooking.ErrAlreadyBookedToday, wantStatus: http.StatusConflict},
		{name: "desk taken", err: createBooking.ErrDeskTaken, wantStatus: http.StatusConflict},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := serve(uc, "token-alice", `{"date": "2025-10-15", "room": "601", "desk": "Desk 3"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
