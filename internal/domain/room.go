package domain

// RoomStatus represents the status of a room
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomReserved  RoomStatus = "reserved"
	RoomBlocked   RoomStatus = "blocked"
)

// Room represents a hotel room. ID is fixed at construction.
type Room struct {
	ID     int
	Status RoomStatus
}

// IsAvailable returns true if the room was never reserved or blocked
func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

// IsValid returns true if the status is one of the known values
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomReserved, RoomBlocked:
		return true
	}
	return false
}

// NewInventory creates rooms 1..size, all available
func NewInventory(size int) []Room {
	rooms := make([]Room, size)
	for i := range rooms {
		rooms[i] = Room{ID: i + 1, Status: RoomAvailable}
	}
	return rooms
}
