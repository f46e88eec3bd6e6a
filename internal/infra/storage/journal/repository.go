package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

var reservationColumns = []string{
	"id",
	"room_id",
	"check_in",
	"check_out",
	"status",
	"block_id",
	"nightly_rate",
	"discount_percent",
	"created_at",
}

var blockColumns = []string{
	"id",
	"check_in",
	"check_out",
	"discount_percent",
	"created_at",
}

// Repository журнал бронирований и блоков в PostgreSQL
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// SaveReservation записывает бронирование
func (r *Repository) SaveReservation(ctx context.Context, reservation *domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildInsertReservation(reservation)
	if err != nil {
		return fmt.Errorf("%w: SaveReservation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveReservation - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// SaveBlock записывает блок и его номера в одной транзакции
func (r *Repository) SaveBlock(ctx context.Context, block *domain.Block) error {
	blockQuery, blockArgs, err := buildInsertBlock(block)
	if err != nil {
		return fmt.Errorf("%w: SaveBlock - build block insert: %v", ErrBuildQuery, err)
	}
	roomsQuery, roomsArgs, err := buildInsertBlockRooms(block)
	if err != nil {
		return fmt.Errorf("%w: SaveBlock - build block rooms insert: %v", ErrBuildQuery, err)
	}

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		executor := txmanager.GetExecutor(txCtx, r.db)

		if _, err := executor.ExecContext(txCtx, blockQuery, blockArgs...); err != nil {
			return fmt.Errorf("%w: SaveBlock - insert block: %v", ErrExecQuery, err)
		}
		if _, err := executor.ExecContext(txCtx, roomsQuery, roomsArgs...); err != nil {
			return fmt.Errorf("%w: SaveBlock - insert block rooms: %v", ErrExecQuery, err)
		}
		return nil
	})
}

// Load читает весь журнал: блоки с номерами и бронирования по возрастанию ID
func (r *Repository) Load(ctx context.Context) (*reservations.Snapshot, error) {
	var snapshot reservations.Snapshot

	err := r.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		blocks, err := r.loadBlocks(txCtx)
		if err != nil {
			return err
		}
		if err := r.loadBlockRooms(txCtx, blocks); err != nil {
			return err
		}
		res, err := r.loadReservations(txCtx)
		if err != nil {
			return err
		}

		snapshot.Blocks = blocks
		snapshot.Reservations = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (r *Repository) loadBlocks(ctx context.Context) (orderedBlocks, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var blocks orderedBlocks
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.ID, &b.Range.CheckIn, &b.Range.CheckOut, &b.DiscountPercent, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: loadBlocks - scan block: %v", ErrScanRow, err)
		}
		b.Range = normalizeRange(b.Range)
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadBlocks - iterate rows: %v", ErrScanRow, err)
	}
	return blocks, nil
}

func (r *Repository) loadBlockRooms(ctx context.Context, blocks orderedBlocks) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("block_id", "room_id").
		From("block_rooms").
		OrderBy("block_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBlockRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBlockRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			blockID int64
			roomID  int
		)
		if err := rows.Scan(&blockID, &roomID); err != nil {
			return fmt.Errorf("%w: loadBlockRooms - scan row: %v", ErrScanRow, err)
		}
		block := blocks.find(blockID)
		if block == nil {
			return fmt.Errorf("%w: room %d belongs to unknown block %d", ErrCorrupted, roomID, blockID)
		}
		block.Rooms = append(block.Rooms, domain.BlockRoom{RoomID: roomID, Status: domain.RoomBlocked})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBlockRooms - iterate rows: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) loadReservations(ctx context.Context) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Reservation
	for rows.Next() {
		var (
			res     domain.Reservation
			blockID sql.NullInt64
		)
		err := rows.Scan(
			&res.ID,
			&res.RoomID,
			&res.Range.CheckIn,
			&res.Range.CheckOut,
			&res.Status,
			&blockID,
			&res.NightlyRate,
			&res.DiscountPercent,
			&res.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadReservations - scan reservation: %v", ErrScanRow, err)
		}
		if blockID.Valid {
			id := blockID.Int64
			res.BlockID = &id
		}
		res.Range = normalizeRange(res.Range)
		result = append(result, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadReservations - iterate rows: %v", ErrScanRow, err)
	}
	return result, nil
}

// Построение запросов вынесено отдельно для тестов

func buildInsertReservation(res *domain.Reservation) (string, []interface{}, error) {
	var blockID sql.NullInt64
	if res.BlockID != nil {
		blockID = sql.NullInt64{Int64: *res.BlockID, Valid: true}
	}

	return psqlbuilder.Insert("reservations").
		Columns(reservationColumns...).
		Values(
			res.ID,
			res.RoomID,
			res.Range.CheckIn,
			res.Range.CheckOut,
			string(res.Status),
			blockID,
			res.NightlyRate,
			res.DiscountPercent,
			res.CreatedAt,
		).
		ToSql()
}

func buildInsertBlock(block *domain.Block) (string, []interface{}, error) {
	return psqlbuilder.Insert("blocks").
		Columns(blockColumns...).
		Values(
			block.ID,
			block.Range.CheckIn,
			block.Range.CheckOut,
			block.DiscountPercent,
			block.CreatedAt,
		).
		ToSql()
}

func buildInsertBlockRooms(block *domain.Block) (string, []interface{}, error) {
	insert := psqlbuilder.Insert("block_rooms").Columns("block_id", "room_id", "position")
	for i, room := range block.Rooms {
		insert = insert.Values(block.ID, room.RoomID, i)
	}
	return insert.ToSql()
}

// DATE из PostgreSQL приходит в локальной зоне драйвера
func normalizeRange(r domain.DateRange) domain.DateRange {
	return domain.DateRange{
		CheckIn:  domain.DateOnly(r.CheckIn),
		CheckOut: domain.DateOnly(r.CheckOut),
	}
}

type orderedBlocks []*domain.Block

func (b orderedBlocks) find(id int64) *domain.Block {
	for _, block := range b {
		if block.ID == id {
			return block
		}
	}
	return nil
}
