package reservations

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Источники бронирований (метка метрики)
const (
	SourceDirect = "direct"
	SourceBlock  = "block"
)

// Settings параметры отеля
type Settings struct {
	MaxRooms             int
	NightlyRate          int64
	BlockDiscountPercent int
}

// DefaultSettings значения по умолчанию: 20 номеров по 200 за ночь
func DefaultSettings() Settings {
	return Settings{
		MaxRooms:             domain.DefaultMaxRooms,
		NightlyRate:          domain.DefaultNightlyRate,
		BlockDiscountPercent: domain.DefaultBlockDiscountPercent,
	}
}

// Snapshot содержимое журнала для восстановления состояния
type Snapshot struct {
	Blocks       []*domain.Block
	Reservations []*domain.Reservation
}

// Occupancy загрузка отеля на одну ночь
type Occupancy struct {
	Date     time.Time
	Reserved int
	Blocked  int
	Free     int
}
