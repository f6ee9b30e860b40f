package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "введите имя, чтобы продолжить"
	msgNameTooLong        = "имя слишком длинное"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.sessions.Login(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyName):
			h.logger.Warn("POST /auth/login - Empty user name")
			handlers.RespondBadRequest(w, msgEmptyName)
		case errors.Is(err, session.ErrNameTooLong):
			h.logger.Warn("POST /auth/login - User name too long")
			handlers.RespondBadRequest(w, msgNameTooLong)
		default:
			h.logger.Error("POST /auth/login - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	user := strings.TrimSpace(req.Name)
	h.logger.Info("POST /auth/login - Session created for user=%s", user)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
