package occupancy

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations"
)

type OccupancyReader interface {
	Occupancy(date time.Time) reservations.Occupancy
}

type Gauges interface {
	SetOccupancy(reserved, blocked, free int)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
