package handlers

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomResponse номер отеля
type RoomResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// ReservationResponse бронирование с рассчитанной стоимостью
type ReservationResponse struct {
	ID              int64  `json:"id"`
	RoomID          int    `json:"roomId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Status          string `json:"status"`
	BlockID         *int64 `json:"blockId,omitempty"`
	Nights          int    `json:"nights"`
	NightlyRate     int64  `json:"nightlyRate"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
	Cost            int64  `json:"cost"`
	CreatedAt       string `json:"createdAt"`
}

func FromRoom(room domain.Room) RoomResponse {
	return RoomResponse{
		ID:     room.ID,
		Status: string(room.Status),
	}
}

func FromRooms(rooms []domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, FromRoom(room))
	}
	return result
}

func FromReservation(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              res.ID,
		RoomID:          res.RoomID,
		CheckIn:         res.Range.CheckIn.Format(domain.DateFormat),
		CheckOut:        res.Range.CheckOut.Format(domain.DateFormat),
		Status:          string(res.Status),
		BlockID:         res.BlockID,
		Nights:          res.Nights(),
		NightlyRate:     res.NightlyRate,
		DiscountPercent: res.DiscountPercent,
		Cost:            res.Cost(),
		CreatedAt:       res.CreatedAt.Format(time.RFC3339),
	}
}

func FromReservations(reservations []domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		result = append(result, FromReservation(&reservations[i]))
	}
	return result
}

// BlockRoomResponse номер внутри блока
type BlockRoomResponse struct {
	RoomID int    `json:"roomId"`
	Status string `json:"status"`
}

// BlockResponse групповой блок номеров
type BlockResponse struct {
	ID              int64               `json:"id"`
	CheckIn         string              `json:"checkIn"`
	CheckOut        string              `json:"checkOut"`
	DiscountPercent int                 `json:"discountPercent"`
	Rooms           []BlockRoomResponse `json:"rooms"`
	AvailableRooms  int                 `json:"availableRooms"`
	CreatedAt       string              `json:"createdAt"`
}

func FromBlock(block *domain.Block) BlockResponse {
	rooms := make([]BlockRoomResponse, 0, len(block.Rooms))
	for _, room := range block.Rooms {
		rooms = append(rooms, BlockRoomResponse{RoomID: room.RoomID, Status: string(room.Status)})
	}
	return BlockResponse{
		ID:              block.ID,
		CheckIn:         block.Range.CheckIn.Format(domain.DateFormat),
		CheckOut:        block.Range.CheckOut.Format(domain.DateFormat),
		DiscountPercent: block.DiscountPercent,
		Rooms:           rooms,
		AvailableRooms:  len(block.AvailableRooms()),
		CreatedAt:       block.CreatedAt.Format(time.RFC3339),
	}
}
