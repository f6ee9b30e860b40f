package logout

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.SessionTokenHeader)
	h.sessions.Logout(token)

	if user, ok := middleware.UserFromContext(r.Context()); ok {
		h.logger.Info("POST /auth/logout - Session revoked for user=%s", user)
	}
	handlers.RespondJSON(w, http.StatusOK, nil)
}
