package domain

import (
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// Booking represents a single desk reservation in the system.
// There is no separate identity: a booking is addressed by the full
// (date, room, desk, user) tuple and changed by cancel + rebook.
type Booking struct {
	Date types.DayMonth
	Room string
	Desk string
	User string
}

// Equal returns true if both bookings match on all four fields.
func (b Booking) Equal(other Booking) bool {
	return b.Date.Equal(other.Date) &&
		b.Room == other.Room &&
		b.Desk == other.Desk &&
		b.User == other.User
}

// SameSlot returns true if both bookings occupy the same desk on the same date.
func (b Booking) SameSlot(other Booking) bool {
	return b.Date.Equal(other.Date) &&
		b.Room == other.Room &&
		b.Desk == other.Desk
}

// BookingsFilter is a predicate over bookings; nil fields match anything.
type BookingsFilter struct {
	Date *types.DayMonth
	Room *string
	Desk *string
	User *string
}

// Matches returns true if the booking satisfies every set field of the filter.
func (f BookingsFilter) Matches(b Booking) bool {
	if f.Date != nil && !b.Date.Equal(*f.Date) {
		return false
	}
	if f.Room != nil && b.Room != *f.Room {
		return false
	}
	if f.Desk != nil && b.Desk != *f.Desk {
		return false
	}
	if f.User != nil && b.User != *f.User {
		return false
	}
	return true
}
