package domain

import (
	"fmt"
)

// Room is one catalog room with its ordered desk list.
type Room struct {
	Code  string
	Desks []string
}

// RoomCatalog is the static room configuration: an ordered set of room
// codes, each with its ordered desk list. Not mutable at runtime.
type RoomCatalog struct {
	rooms []Room
	index map[string]int
}

// NewRoomCatalog builds a catalog from the configured room list.
// Room order and desk order are preserved as configured.
func NewRoomCatalog(rooms []Room) (*RoomCatalog, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("room catalog is empty")
	}

	index := make(map[string]int, len(rooms))
	for i, room := range rooms {
		if room.Code == "" {
			return nil, fmt.Errorf("room #%d has empty code", i+1)
		}
		if _, exists := index[room.Code]; exists {
			return nil, fmt.Errorf("duplicate room code %q", room.Code)
		}
		if len(room.Desks) == 0 {
			return nil, fmt.Errorf("room %q has no desks", room.Code)
		}
		seen := make(map[string]struct{}, len(room.Desks))
		for _, desk := range room.Desks {
			if desk == "" {
				return nil, fmt.Errorf("room %q has empty desk label", room.Code)
			}
			if _, dup := seen[desk]; dup {
				return nil, fmt.Errorf("room %q has duplicate desk %q", room.Code, desk)
			}
			seen[desk] = struct{}{}
		}
		index[room.Code] = i
	}

	return &RoomCatalog{rooms: rooms, index: index}, nil
}

// DefaultRoomCatalog returns the built-in room configuration.
func DefaultRoomCatalog() *RoomCatalog {
	catalog, err := NewRoomCatalog([]Room{
		{Code: "601", Desks: makeDesks(8)},
		{Code: "602", Desks: makeDesks(8)},
		{Code: "604", Desks: makeDesks(12)},
		{Code: "605", Desks: makeDesks(9)},
	})
	if err != nil {
		// the built-in catalog is static, this cannot fail
		panic(err)
	}
	return catalog
}

// Rooms returns the configured rooms in catalog order.
func (c *RoomCatalog) Rooms() []Room {
	return c.rooms
}

// Codes returns the room codes in catalog order.
func (c *RoomCatalog) Codes() []string {
	codes := make([]string, len(c.rooms))
	for i, room := range c.rooms {
		codes[i] = room.Code
	}
	return codes
}

// Desks returns the ordered desk list for the room, or false if the room
// is not part of the catalog.
func (c *RoomCatalog) Desks(code string) ([]string, bool) {
	i, ok := c.index[code]
	if !ok {
		return nil, false
	}
	return c.rooms[i].Desks, true
}

// HasRoom reports whether the room code is part of the catalog.
func (c *RoomCatalog) HasRoom(code string) bool {
	_, ok := c.index[code]
	return ok
}

// HasDesk reports whether the desk belongs to the room's configured list.
func (c *RoomCatalog) HasDesk(code, desk string) bool {
	desks, ok := c.Desks(code)
	if !ok {
		return false
	}
	for _, d := range desks {
		if d == desk {
			return true
		}
	}
	return false
}

func makeDesks(n int) []string {
	desks := make([]string, n)
	for i := range desks {
		desks[i] = fmt.Sprintf("Desk %d", i+1)
	}
	return desks
}
