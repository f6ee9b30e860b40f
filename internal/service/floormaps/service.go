package floormaps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Расширения, в которых ищется план этажа комнаты
var knownExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service отдает пути к картинкам планов этажей по коду комнаты.
// Картинки лежат в настроенной папке под именем <код_комнаты>.<расширение>.
type Service struct {
	dir     string
	catalog *domain.RoomCatalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса планов этажей
func NewService(dir string, catalog *domain.RoomCatalog, logger Logger) *Service {
	return &Service{
		dir:     dir,
		catalog: catalog,
		logger:  logger,
	}
}

// Resolve возвращает путь к картинке плана этажа комнаты. Отсутствие
// картинки дает ErrMapNotFound, который вызывающие трактуют как штатный
// случай отображения, а не сбой.
func (s *Service) Resolve(room string) (string, error) {
	if !s.catalog.HasRoom(room) {
		return "", fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	for _, ext := range knownExtensions {
		path := filepath.Join(s.dir, room+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	s.logger.Info("Resolve: no floor map image for room=%s in %s", room, s.dir)
	return "", fmt.Errorf("%w: room %q", ErrMapNotFound, room)
}

// HasMap сообщает, есть ли на диске картинка плана этажа комнаты
func (s *Service) HasMap(room string) bool {
	_, err := s.Resolve(room)
	return err == nil
}
