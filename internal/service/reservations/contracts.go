package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Journal журнал изменений (append-only). Запись выполняется до изменения состояния в памяти.
type Journal interface {
	SaveReservation(ctx context.Context, reservation *domain.Reservation) error
	SaveBlock(ctx context.Context, block *domain.Block) error
	Load(ctx context.Context) (*Snapshot, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	ReservationCreated(source string)
	BlockCreated()
	AllocationFailed(operation, reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// nopJournal используется, когда персистентность отключена
type nopJournal struct{}

func (nopJournal) SaveReservation(context.Context, *domain.Reservation) error { return nil }
func (nopJournal) SaveBlock(context.Context, *domain.Block) error             { return nil }
func (nopJournal) Load(context.Context) (*Snapshot, error)                    { return &Snapshot{}, nil }

type nopMetrics struct{}

func (nopMetrics) ReservationCreated(string)       {}
func (nopMetrics) BlockCreated()                   {}
func (nopMetrics) AllocationFailed(string, string) {}
