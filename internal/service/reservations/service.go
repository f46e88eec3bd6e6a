package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Manager управляет инвентарём номеров, бронированиями и блоками.
// Все изменяющие операции выполняются под эксклюзивной блокировкой:
// выбор номера (чтение) и запись происходят в одной критической секции.
type Manager struct {
	mu sync.RWMutex

	settings          Settings
	rooms             []domain.Room // rooms[id-1]
	reservations      []*domain.Reservation
	blocks            map[int64]*domain.Block
	blockOrder        []int64
	lastReservationID int64

	journal      Journal
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewManager создает менеджер с инвентарём из settings.MaxRooms номеров.
// journal и metrics могут быть nil.
func NewManager(
	settings Settings,
	journal Journal,
	metrics Metrics,
	logger Logger,
) *Manager {
	if journal == nil {
		journal = nopJournal{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Manager{
		settings:     settings,
		rooms:        domain.NewInventory(settings.MaxRooms),
		blocks:       make(map[int64]*domain.Block),
		journal:      journal,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Settings возвращает параметры отеля
func (m *Manager) Settings() Settings {
	return m.settings
}

// AllRooms возвращает весь инвентарь по возрастанию ID
func (m *Manager) AllRooms() []domain.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rooms := make([]domain.Room, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

// Room возвращает номер по ID
func (m *Manager) Room(id int) (domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 1 || id > len(m.rooms) {
		return domain.Room{}, fmt.Errorf("%w: id=%d", domain.ErrRoomNotFound, id)
	}
	return m.rooms[id-1], nil
}

// MakeReservation бронирует первый (по возрастанию ID) номер, свободный на [checkIn, checkOut).
// Возвращает срез из одного бронирования.
func (m *Manager) MakeReservation(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Reservation, error) {
	dates, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		m.logger.Warn("MakeReservation: invalid range: %v", err)
		m.metrics.AllocationFailed("make_reservation", failureReason(err))
		return nil, err
	}

	m.logger.Info("MakeReservation: requested %s", dates)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Ограничение от овербукинга: одновременных бронирований не больше, чем номеров
	if peak := m.peakConcurrentReservations(dates); peak >= m.settings.MaxRooms {
		m.logger.Warn("MakeReservation: %d/%d concurrent reservations within %s", peak, m.settings.MaxRooms, dates)
		m.metrics.AllocationFailed("make_reservation", failureReason(domain.ErrNoAvailability))
		return nil, fmt.Errorf("%w: %d reservations share a night within %s", domain.ErrNoAvailability, peak, dates)
	}

	free := m.freeRoomIDs(dates)
	if len(free) == 0 {
		m.logger.Warn("MakeReservation: no rooms available for %s", dates)
		m.metrics.AllocationFailed("make_reservation", failureReason(domain.ErrNoAvailability))
		return nil, fmt.Errorf("%w: every room is booked for %s", domain.ErrNoAvailability, dates)
	}

	reservation, err := domain.NewReservation(m.lastReservationID+1, free[0], dates, m.settings.NightlyRate)
	if err != nil {
		return nil, err
	}
	reservation.CreatedAt = m.timeProvider.Now()

	if err := m.journal.SaveReservation(ctx, reservation); err != nil {
		m.logger.Error("MakeReservation: journal error: %v", err)
		m.metrics.AllocationFailed("make_reservation", failureReason(ErrInternal))
		return nil, fmt.Errorf("%w: MakeReservation - save reservation: %v", ErrInternal, err)
	}

	m.applyReservation(reservation)
	m.metrics.ReservationCreated(SourceDirect)

	m.logger.Info("MakeReservation: reservation id=%d room=%d %s cost=%d",
		reservation.ID, reservation.RoomID, dates, reservation.Cost())
	return []domain.Reservation{*reservation}, nil
}

// ReservationsByDate возвращает бронирования, пересекающиеся с [start, end).
// Если end не позже start, запрос покрывает одну ночь, начинающуюся в start.
func (m *Manager) ReservationsByDate(start, end time.Time) []domain.Reservation {
	dates := queryRange(start, end)

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Reservation, 0)
	for _, r := range m.reservations {
		if r.Overlaps(dates) {
			result = append(result, *r)
		}
	}
	return result
}

// AvailableRooms возвращает номера без бронирований и блоков, пересекающихся с [start, end).
// Если end не позже start, запрос покрывает одну ночь, начинающуюся в start.
func (m *Manager) AvailableRooms(start, end time.Time) []domain.Room {
	dates := queryRange(start, end)

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.freeRoomIDs(dates)
	rooms := make([]domain.Room, 0, len(ids))
	for _, id := range ids {
		rooms = append(rooms, m.rooms[id-1])
	}
	return rooms
}

// MakeBlock создает блок из size номеров, свободных на [checkIn, checkOut), под ID блока id
func (m *Manager) MakeBlock(ctx context.Context, size int, checkIn, checkOut time.Time, id int64) (*domain.Block, error) {
	if !domain.IsValidBlockSize(size) {
		m.logger.Warn("MakeBlock: invalid size=%d for block id=%d", size, id)
		m.metrics.AllocationFailed("make_block", failureReason(domain.ErrInvalidSize))
		return nil, fmt.Errorf("%w: got %d, want %d..%d", domain.ErrInvalidSize, size, domain.MinBlockSize, domain.MaxBlockSize)
	}

	dates, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		m.logger.Warn("MakeBlock: invalid range for block id=%d: %v", id, err)
		m.metrics.AllocationFailed("make_block", failureReason(err))
		return nil, err
	}

	m.logger.Info("MakeBlock: block id=%d size=%d %s", id, size, dates)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.blocks[id]; exists {
		m.logger.Warn("MakeBlock: block id=%d already exists", id)
		m.metrics.AllocationFailed("make_block", failureReason(domain.ErrDuplicateID))
		return nil, fmt.Errorf("%w: id=%d", domain.ErrDuplicateID, id)
	}

	block, err := domain.NewBlock(id, size, dates, m.freeRoomIDs(dates), m.settings.BlockDiscountPercent)
	if err != nil {
		m.logger.Warn("MakeBlock: block id=%d rejected: %v", id, err)
		m.metrics.AllocationFailed("make_block", failureReason(err))
		return nil, err
	}
	block.CreatedAt = m.timeProvider.Now()

	if err := m.journal.SaveBlock(ctx, block); err != nil {
		m.logger.Error("MakeBlock: journal error for block id=%d: %v", id, err)
		m.metrics.AllocationFailed("make_block", failureReason(ErrInternal))
		return nil, fmt.Errorf("%w: MakeBlock - save block: %v", ErrInternal, err)
	}

	m.applyBlock(block)
	m.metrics.BlockCreated()

	m.logger.Info("MakeBlock: block id=%d holds rooms %v", id, block.RoomIDs())
	return block.Clone(), nil
}

// CheckBlockAvailability возвращает номера блока, ещё не превращённые в бронирования
func (m *Manager) CheckBlockAvailability(id int64) ([]domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	block, ok := m.blocks[id]
	if !ok {
		m.logger.Warn("CheckBlockAvailability: block id=%d not found", id)
		return nil, fmt.Errorf("%w: id=%d", domain.ErrBlockNotFound, id)
	}

	ids := block.AvailableRooms()
	rooms := make([]domain.Room, 0, len(ids))
	for _, roomID := range ids {
		rooms = append(rooms, domain.Room{ID: roomID, Status: domain.RoomBlocked})
	}
	return rooms, nil
}

// ReserveBlockRoom превращает первый заблокированный номер блока в бронирование на даты блока.
// Бронирование попадает в общий журнал и учитывается последующими запросами.
func (m *Manager) ReserveBlockRoom(ctx context.Context, id int64) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	block, ok := m.blocks[id]
	if !ok {
		m.logger.Warn("ReserveBlockRoom: block id=%d not found", id)
		m.metrics.AllocationFailed("reserve_block_room", failureReason(domain.ErrBlockNotFound))
		return nil, fmt.Errorf("%w: id=%d", domain.ErrBlockNotFound, id)
	}

	roomID, err := block.NextBlockedRoom()
	if err != nil {
		m.logger.Warn("ReserveBlockRoom: %v", err)
		m.metrics.AllocationFailed("reserve_block_room", failureReason(err))
		return nil, err
	}

	reservation, err := domain.NewReservation(m.lastReservationID+1, roomID, block.Range, m.settings.NightlyRate)
	if err != nil {
		return nil, err
	}
	blockID := block.ID
	reservation.BlockID = &blockID
	reservation.DiscountPercent = block.DiscountPercent
	reservation.CreatedAt = m.timeProvider.Now()

	if err := m.journal.SaveReservation(ctx, reservation); err != nil {
		m.logger.Error("ReserveBlockRoom: journal error for block id=%d: %v", id, err)
		m.metrics.AllocationFailed("reserve_block_room", failureReason(ErrInternal))
		return nil, fmt.Errorf("%w: ReserveBlockRoom - save reservation: %v", ErrInternal, err)
	}

	block.MarkReserved(roomID)
	m.applyReservation(reservation)
	m.metrics.ReservationCreated(SourceBlock)

	m.logger.Info("ReserveBlockRoom: reservation id=%d room=%d from block id=%d cost=%d",
		reservation.ID, roomID, id, reservation.Cost())

	result := *reservation
	return &result, nil
}

// Reservation возвращает бронирование по ID
func (m *Manager) Reservation(id int64) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// ID выдаются последовательно с 1
	if id < 1 || id > int64(len(m.reservations)) {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrReservationNotFound, id)
	}
	result := *m.reservations[id-1]
	return &result, nil
}

// Reservations возвращает все бронирования в порядке создания
func (m *Manager) Reservations() []domain.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Reservation, len(m.reservations))
	for i, r := range m.reservations {
		result[i] = *r
	}
	return result
}

// Block возвращает копию блока по ID
func (m *Manager) Block(id int64) (*domain.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	block, ok := m.blocks[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrBlockNotFound, id)
	}
	return block.Clone(), nil
}

// Blocks возвращает копии всех блоков в порядке создания
func (m *Manager) Blocks() []*domain.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*domain.Block, 0, len(m.blockOrder))
	for _, id := range m.blockOrder {
		result = append(result, m.blocks[id].Clone())
	}
	return result
}

// Occupancy считает занятость на ночь, начинающуюся в date
func (m *Manager) Occupancy(date time.Time) Occupancy {
	night := queryRange(date, date)

	m.mu.RLock()
	defer m.mu.RUnlock()

	reserved := make(map[int]struct{})
	for _, r := range m.reservations {
		if r.Overlaps(night) {
			reserved[r.RoomID] = struct{}{}
		}
	}

	blocked := make(map[int]struct{})
	for _, id := range m.blockOrder {
		block := m.blocks[id]
		if !block.Range.Overlaps(night) {
			continue
		}
		for _, roomID := range block.AvailableRooms() {
			if _, ok := reserved[roomID]; !ok {
				blocked[roomID] = struct{}{}
			}
		}
	}

	return Occupancy{
		Date:     night.CheckIn,
		Reserved: len(reserved),
		Blocked:  len(blocked),
		Free:     len(m.rooms) - len(reserved) - len(blocked),
	}
}

// Restore загружает журнал и воспроизводит его. Допустимо только для пустого менеджера.
func (m *Manager) Restore(ctx context.Context) error {
	snapshot, err := m.journal.Load(ctx)
	if err != nil {
		m.logger.Error("Restore: journal load error: %v", err)
		return fmt.Errorf("%w: Restore - load journal: %v", ErrInternal, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.reservations) > 0 || len(m.blocks) > 0 {
		return ErrNotEmpty
	}

	if err := m.replay(snapshot); err != nil {
		// Частично восстановленное состояние не оставляем
		m.reset()
		m.logger.Error("Restore: replay error: %v", err)
		return err
	}

	m.logger.Info("Restore: restored %d blocks and %d reservations", len(m.blocks), len(m.reservations))
	return nil
}

// Вспомогательные методы (вызываются под блокировкой)

// freeRoomIDs возвращает ID номеров без пересечений с dates, по возрастанию
func (m *Manager) freeRoomIDs(dates domain.DateRange) []int {
	occupied := make(map[int]struct{})
	for _, r := range m.reservations {
		if r.Overlaps(dates) {
			occupied[r.RoomID] = struct{}{}
		}
	}
	for _, block := range m.blocks {
		if !block.Range.Overlaps(dates) {
			continue
		}
		for _, roomID := range block.RoomIDs() {
			occupied[roomID] = struct{}{}
		}
	}

	free := make([]int, 0, len(m.rooms))
	for _, room := range m.rooms {
		if _, ok := occupied[room.ID]; !ok {
			free = append(free, room.ID)
		}
	}
	return free
}

// peakConcurrentReservations максимальное число бронирований, приходящихся на одну ночь внутри dates
func (m *Manager) peakConcurrentReservations(dates domain.DateRange) int {
	type edge struct {
		at    time.Time
		delta int
	}

	edges := make([]edge, 0)
	for _, r := range m.reservations {
		if !r.Overlaps(dates) {
			continue
		}
		start, end := r.Range.CheckIn, r.Range.CheckOut
		if start.Before(dates.CheckIn) {
			start = dates.CheckIn
		}
		if end.After(dates.CheckOut) {
			end = dates.CheckOut
		}
		edges = append(edges, edge{at: start, delta: 1}, edge{at: end, delta: -1})
	}

	// При совпадении даты выезд обрабатывается раньше заезда
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at.Equal(edges[j].at) {
			return edges[i].delta < edges[j].delta
		}
		return edges[i].at.Before(edges[j].at)
	})

	current, peak := 0, 0
	for _, e := range edges {
		current += e.delta
		if current > peak {
			peak = current
		}
	}
	return peak
}

func (m *Manager) applyReservation(reservation *domain.Reservation) {
	m.reservations = append(m.reservations, reservation)
	m.lastReservationID = reservation.ID
	m.rooms[reservation.RoomID-1].Status = domain.RoomReserved
}

func (m *Manager) applyBlock(block *domain.Block) {
	m.blocks[block.ID] = block
	m.blockOrder = append(m.blockOrder, block.ID)
	for _, roomID := range block.RoomIDs() {
		m.rooms[roomID-1].Status = domain.RoomBlocked
	}
}

// replay применяет события журнала в порядке создания; при равном времени блок идёт раньше
func (m *Manager) replay(snapshot *Snapshot) error {
	type event struct {
		at          time.Time
		block       *domain.Block
		reservation *domain.Reservation
	}

	events := make([]event, 0, len(snapshot.Blocks)+len(snapshot.Reservations))
	for _, b := range snapshot.Blocks {
		events = append(events, event{at: b.CreatedAt, block: b})
	}
	for _, r := range snapshot.Reservations {
		events = append(events, event{at: r.CreatedAt, reservation: r})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].at.Equal(events[j].at) {
			return events[i].block != nil && events[j].block == nil
		}
		return events[i].at.Before(events[j].at)
	})

	for _, e := range events {
		if e.block != nil {
			if err := m.replayBlock(e.block); err != nil {
				return err
			}
			continue
		}
		if err := m.replayReservation(e.reservation); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) replayBlock(block *domain.Block) error {
	if _, exists := m.blocks[block.ID]; exists {
		return fmt.Errorf("%w: journal has duplicate block id=%d", ErrInternal, block.ID)
	}
	free := m.freeRoomIDs(block.Range)
	for _, roomID := range block.RoomIDs() {
		if !m.roomExists(roomID) {
			return fmt.Errorf("%w: block id=%d references room %d outside inventory", ErrInternal, block.ID, roomID)
		}
		if !containsID(free, roomID) {
			return fmt.Errorf("%w: block id=%d holds room %d already taken for %s",
				ErrInternal, block.ID, roomID, block.Range)
		}
	}
	m.applyBlock(block.Clone())
	return nil
}

func (m *Manager) replayReservation(reservation *domain.Reservation) error {
	if !m.roomExists(reservation.RoomID) {
		return fmt.Errorf("%w: reservation id=%d references room %d outside inventory",
			ErrInternal, reservation.ID, reservation.RoomID)
	}
	if reservation.ID != m.lastReservationID+1 {
		return fmt.Errorf("%w: journal reservation id=%d out of sequence (expected %d)",
			ErrInternal, reservation.ID, m.lastReservationID+1)
	}

	if reservation.BlockID == nil {
		if !containsID(m.freeRoomIDs(reservation.Range), reservation.RoomID) {
			return fmt.Errorf("%w: reservation id=%d double-books room %d for %s",
				ErrInternal, reservation.ID, reservation.RoomID, reservation.Range)
		}
	} else {
		block, ok := m.blocks[*reservation.BlockID]
		if !ok || !containsID(block.AvailableRooms(), reservation.RoomID) || !block.Range.Equal(reservation.Range) {
			return fmt.Errorf("%w: reservation id=%d does not match a blocked room of block id=%d",
				ErrInternal, reservation.ID, *reservation.BlockID)
		}
		if m.roomReservedWithin(reservation.RoomID, reservation.Range) {
			return fmt.Errorf("%w: reservation id=%d double-books room %d for %s",
				ErrInternal, reservation.ID, reservation.RoomID, reservation.Range)
		}
		block.MarkReserved(reservation.RoomID)
	}

	r := *reservation
	m.applyReservation(&r)
	return nil
}

func (m *Manager) roomReservedWithin(roomID int, dates domain.DateRange) bool {
	for _, r := range m.reservations {
		if r.RoomID == roomID && r.Overlaps(dates) {
			return true
		}
	}
	return false
}

func (m *Manager) roomExists(id int) bool {
	return id >= 1 && id <= len(m.rooms)
}

func (m *Manager) reset() {
	m.rooms = domain.NewInventory(m.settings.MaxRooms)
	m.reservations = nil
	m.blocks = make(map[int64]*domain.Block)
	m.blockOrder = nil
	m.lastReservationID = 0
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// queryRange строит диапазон запроса; пустой или обратный диапазон означает одну ночь start
func queryRange(start, end time.Time) domain.DateRange {
	dates := domain.DateRange{CheckIn: domain.DateOnly(start), CheckOut: domain.DateOnly(end)}
	if !dates.CheckOut.After(dates.CheckIn) {
		dates.CheckOut = dates.CheckIn.AddDate(0, 0, 1)
	}
	return dates
}

// failureReason метка метрики для ошибки
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, domain.ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, domain.ErrNoAvailability):
		return "no_availability"
	case errors.Is(err, domain.ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, domain.ErrBlockNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
