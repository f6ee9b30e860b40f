package get_desk_status

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

// DeskStatusRow статус одного стола
type DeskStatusRow struct {
	Desk     string `json:"desk"`
	Booked   bool   `json:"booked"`
	BookedBy string `json:"bookedBy,omitempty"`
}

// DeskStatusResponse HTTP response model
type DeskStatusResponse struct {
	Date  string          `json:"date"`
	Room  string          `json:"room"`
	Desks []DeskStatusRow `json:"desks"`
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

// Handle GET /api/v1/rooms/{roomCode}/desk-status?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomCode"]

	date, err := handlers.ParseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{room}/desk-status - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	statuses, err := h.engine.DeskStatuses(date, room)
	if err != nil {
		if errors.Is(err, availability.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{room}/desk-status - Room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{room}/desk-status - Failed: room=%s, error=%v", room, err)
		handlers.RespondInternalError(w)
		return
	}

	rows := make([]DeskStatusRow, len(statuses))
	for i, s := range statuses {
		rows[i] = DeskStatusRow{Desk: s.Desk, Booked: s.Booked, BookedBy: s.BookedBy}
	}

	handlers.RespondJSON(w, http.StatusOK, DeskStatusResponse{
		Date:  date.String(),
		Room:  room,
		Desks: rows,
	})
}
