package login

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBookingService/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(session.NewManager(), nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleLogin(t *testing.T) {
	rec := doLogin(t, `{"name": "  Alice  "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alice", resp.User)
}

func TestHandleLoginEmptyName(t *testing.T) {
	rec := doLogin(t, `{"name": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLoginBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not json`},
		{name: "unknown field", body: `{"name": "Alice", "password": "hunter2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doLogin(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
