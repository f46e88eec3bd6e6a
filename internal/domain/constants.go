package domain

// Default hotel configuration values
const (
	DefaultMaxRooms             = 20
	DefaultNightlyRate          = 200
	DefaultBlockDiscountPercent = 20
)

// Block size bounds
const (
	MinBlockSize = 2
	MaxBlockSize = 5
)

// Business validation constants
const (
	MaxRoomsLimit      = 1000
	MaxDiscountPercent = 100
)

// DateFormat canonical date format (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// secondsPerNight длительность одной ночи при подсчёте ночей
const secondsPerNight = 24 * 60 * 60
