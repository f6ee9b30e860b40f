package get_floor_map

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/floormaps"
)

const (
	msgRoomNotFound = "комната не найдена"
	msgMapNotFound  = "план этажа для этой комнаты не найден"
)

type Handler struct {
	floorMaps FloorMapResolver
	logger    Logger
}

func NewHandler(floorMaps FloorMapResolver, logger Logger) *Handler {
	return &Handler{
		floorMaps: floorMaps,
		logger:    logger,
	}
}

// Handle GET /api/v1/rooms/{roomCode}/floor-map
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomCode"]

	path, err := h.floorMaps.Resolve(room)
	if err != nil {
		switch {
		case errors.Is(err, floormaps.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{room}/floor-map - Room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, floormaps.ErrMapNotFound):
			// Отсутствие картинки считается штатным случаем отображения
			handlers.RespondNotFound(w, msgMapNotFound)
		default:
			h.logger.Error("GET /rooms/{room}/floor-map - Failed: room=%s, error=%v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.ServeFile(w, r, path)
}
