package get_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// RoomResponse одна комната каталога
type RoomResponse struct {
	Code        string   `json:"code"`
	Desks       []string `json:"desks"`
	HasFloorMap bool     `json:"hasFloorMap"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type Handler struct {
	catalog   *domain.RoomCatalog
	floorMaps FloorMapResolver
	logger    Logger
}

func NewHandler(catalog *domain.RoomCatalog, floorMaps FloorMapResolver, logger Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		floorMaps: floorMaps,
		logger:    logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms := h.catalog.Rooms()
	out := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = RoomResponse{
			Code:        room.Code,
			Desks:       room.Desks,
			HasFloorMap: h.floorMaps.HasMap(room.Code),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, RoomListResponse{Rooms: out})
}
