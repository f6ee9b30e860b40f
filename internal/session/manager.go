package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Manager хранит сессии вошедших пользователей.
//
// Логин принимает свободный текст без проверки личности: единственное
// требование, что имя непустое после обрезки пробелов. Сессии живут в
// памяти процесса и исчезают с его рестартом.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]string // токен -> имя пользователя
}

// NewManager создает новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]string),
	}
}

// Login регистрирует имя пользователя и возвращает новый токен сессии
func (m *Manager) Login(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > domain.MaxUserNameLen {
		return "", ErrNameTooLong
	}

	token := uuid.NewString()

	m.mu.Lock()
	m.sessions[token] = name
	m.mu.Unlock()

	return token, nil
}

// User возвращает имя пользователя, привязанное к токену
func (m *Manager) User(token string) (string, error) {
	m.mu.RLock()
	name, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}
	return name, nil
}

// Logout отзывает токен. Отзыв неизвестного токена не считается ошибкой.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
