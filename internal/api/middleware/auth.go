package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
)

// SessionTokenHeader заголовок с токеном сессии
const SessionTokenHeader = "X-Session-Token"

const msgUnauthorized = "требуется вход: передайте токен сессии в заголовке X-Session-Token"

type contextKey string

const userContextKey contextKey = "user"

// SessionResolver интерфейс менеджера сессий
type SessionResolver interface {
	User(token string) (string, error)
}

// Auth резолвит токен сессии в имя пользователя и кладет его в контекст
// запроса. Запросы без валидного токена отклоняются с 401.
func Auth(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user, err := sessions.User(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает имя пользователя, положенное Auth middleware
func UserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(userContextKey).(string)
	return user, ok
}
