package domain

import (
	"fmt"
	"time"
)

// BlockRoom is a room held by a block together with its status inside the block
type BlockRoom struct {
	RoomID int
	Status RoomStatus // RoomBlocked until converted, then RoomReserved
}

// Block represents a group reservation of several rooms for one date range.
// Rooms are kept in selection order; conversion always takes the first blocked room.
type Block struct {
	ID              int64
	Rooms           []BlockRoom
	Range           DateRange
	DiscountPercent int
	CreatedAt       time.Time
}

// NewBlock validates the size and range and takes the first size rooms from candidates.
// Candidates must already be free for the whole range, in ascending room id order.
func NewBlock(id int64, size int, dates DateRange, candidates []int, discountPercent int) (*Block, error) {
	if !IsValidBlockSize(size) {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidSize, size, MinBlockSize, MaxBlockSize)
	}
	if err := dates.Validate(); err != nil {
		return nil, err
	}
	if len(candidates) < size {
		return nil, fmt.Errorf("%w: %d rooms free for %s, block needs %d",
			ErrNoAvailability, len(candidates), dates, size)
	}

	rooms := make([]BlockRoom, size)
	for i := 0; i < size; i++ {
		rooms[i] = BlockRoom{RoomID: candidates[i], Status: RoomBlocked}
	}

	return &Block{
		ID:              id,
		Rooms:           rooms,
		Range:           dates,
		DiscountPercent: discountPercent,
	}, nil
}

// IsValidBlockSize returns true if size is within MinBlockSize..MaxBlockSize
func IsValidBlockSize(size int) bool {
	return size >= MinBlockSize && size <= MaxBlockSize
}

// RoomIDs returns ids of every room in the block
func (b *Block) RoomIDs() []int {
	ids := make([]int, len(b.Rooms))
	for i, r := range b.Rooms {
		ids[i] = r.RoomID
	}
	return ids
}

// AvailableRooms returns ids of rooms still blocked (not yet converted to reservations)
func (b *Block) AvailableRooms() []int {
	ids := make([]int, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		if r.Status == RoomBlocked {
			ids = append(ids, r.RoomID)
		}
	}
	return ids
}

// NextBlockedRoom returns the first room still blocked without changing it
func (b *Block) NextBlockedRoom() (int, error) {
	for _, r := range b.Rooms {
		if r.Status == RoomBlocked {
			return r.RoomID, nil
		}
	}
	return 0, fmt.Errorf("%w: block %d has no blocked rooms left", ErrNoAvailability, b.ID)
}

// ReserveRoom marks the first blocked room as reserved and returns its id
func (b *Block) ReserveRoom() (int, error) {
	roomID, err := b.NextBlockedRoom()
	if err != nil {
		return 0, err
	}
	b.MarkReserved(roomID)
	return roomID, nil
}

// MarkReserved marks roomID as reserved inside the block. Unknown rooms are ignored.
func (b *Block) MarkReserved(roomID int) {
	for i := range b.Rooms {
		if b.Rooms[i].RoomID == roomID {
			b.Rooms[i].Status = RoomReserved
			return
		}
	}
}

// Contains returns true if roomID belongs to the block
func (b *Block) Contains(roomID int) bool {
	for _, r := range b.Rooms {
		if r.RoomID == roomID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out of the manager
func (b *Block) Clone() *Block {
	c := *b
	c.Rooms = make([]BlockRoom, len(b.Rooms))
	copy(c.Rooms, b.Rooms)
	return &c
}
