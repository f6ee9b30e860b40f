package get_free_desk_counts

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

// RoomCount количество свободных столов одной комнаты
type RoomCount struct {
	Room       string `json:"room"`
	FreeDesks  int    `json:"freeDesks"`
	TotalDesks int    `json:"totalDesks"`
}

// FreeDeskCountsResponse HTTP response model.
// Комнаты идут в порядке каталога.
type FreeDeskCountsResponse struct {
	Date  string      `json:"date"`
	Rooms []RoomCount `json:"rooms"`
}

type Handler struct {
	engine  AvailabilityEngine
	catalog *domain.RoomCatalog
	logger  Logger
}

func NewHandler(engine AvailabilityEngine, catalog *domain.RoomCatalog, logger Logger) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-desk-counts?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /free-desk-counts - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	counts := h.engine.FreeDeskCounts(date)

	rooms := make([]RoomCount, 0, len(counts))
	for _, room := range h.catalog.Rooms() {
		rooms = append(rooms, RoomCount{
			Room:       room.Code,
			FreeDesks:  counts[room.Code],
			TotalDesks: len(room.Desks),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, FreeDeskCountsResponse{
		Date:  date.String(),
		Rooms: rooms,
	})
}
