package get_free_desks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound = "комната не найдена"
)

// FreeDesksResponse HTTP response model
type FreeDesksResponse struct {
	Date      string   `json:"date"`
	Room      string   `json:"room"`
	FreeDesks []string `json:"freeDesks"`
}

type Handler struct {
	engine AvailabilityEngine
	logger Logger
}

func NewHandler(engine AvailabilityEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle GET /api/v1/rooms/{roomCode}/free-desks?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomCode"]

	date, err := handlers.ParseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{room}/free-desks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	free, err := h.engine.FreeDesks(date, room)
	if err != nil {
		if errors.Is(err, availability.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{room}/free-desks - Room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{room}/free-desks - Failed: room=%s, error=%v", room, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FreeDesksResponse{
		Date:      date.String(),
		Room:      room,
		FreeDesks: free,
	})
}
