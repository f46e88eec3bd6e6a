package occupancy

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations"
)

var ErrInvalidSchedule = errors.New("occupancy: invalid schedule")

// Job обновляет gauge загрузки отеля на текущую ночь
type Job struct {
	reader       OccupancyReader
	gauges       Gauges
	timeProvider TimeProvider
	logger       Logger
}

func NewJob(reader OccupancyReader, gauges Gauges, logger Logger) *Job {
	return &Job{
		reader:       reader,
		gauges:       gauges,
		timeProvider: &reservations.RealTimeProvider{},
		logger:       logger,
	}
}

// Run один проход: снимок загрузки на сегодняшнюю ночь
func (j *Job) Run() {
	occ := j.reader.Occupancy(j.timeProvider.Now())
	j.gauges.SetOccupancy(occ.Reserved, occ.Blocked, occ.Free)
	j.logger.Info("Occupancy refreshed: date=%s, reserved=%d, blocked=%d, free=%d",
		occ.Date.Format(domain.DateFormat), occ.Reserved, occ.Blocked, occ.Free)
}

// Schedule регистрирует задачу в планировщике и сразу выполняет первый проход
func (j *Job) Schedule(c *cron.Cron, schedule string) (cron.EntryID, error) {
	id, err := c.AddJob(schedule, j)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}
	j.Run()
	return id, nil
}
