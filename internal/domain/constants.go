package domain

// Default configuration values
const (
	DefaultHorizonDays  = 7
	DefaultBookingsFile = "bookings.csv"
	DefaultFloorMapsDir = "Rooms"
)

// Business validation constants
const (
	MinHorizonDays = 0
	MaxHorizonDays = 365 // 1 year
	MaxUserNameLen = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, the date layout at the API boundary
)
