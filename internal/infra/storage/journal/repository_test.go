package journal

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

func testRange(t *testing.T) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(
		time.Date(2019, time.March, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2019, time.March, 23, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func TestBuildInsertReservation(t *testing.T) {
	createdAt := time.Date(2019, time.March, 1, 12, 0, 0, 0, time.UTC)
	res := &domain.Reservation{
		ID:          7,
		RoomID:      3,
		Range:       testRange(t),
		Status:      domain.StatusReserved,
		NightlyRate: 200,
		CreatedAt:   createdAt,
	}

	query, args, err := buildInsertReservation(res)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO reservations (id,room_id,check_in,check_out,status,block_id,nightly_rate,discount_percent,created_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)",
		query)
	require.Len(t, args, 9)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, 3, args[1])
	assert.Equal(t, "reserved", args[4])
	assert.Equal(t, sql.NullInt64{}, args[5])
	assert.Equal(t, createdAt, args[8])
}

func TestBuildInsertReservation_FromBlock(t *testing.T) {
	blockID := int64(2)
	res := &domain.Reservation{
		ID:              1,
		RoomID:          4,
		Range:           testRange(t),
		Status:          domain.StatusReserved,
		BlockID:         &blockID,
		NightlyRate:     200,
		DiscountPercent: 20,
	}

	_, args, err := buildInsertReservation(res)
	require.NoError(t, err)

	assert.Equal(t, sql.NullInt64{Int64: 2, Valid: true}, args[5])
	assert.Equal(t, 20, args[7])
}

func TestBuildInsertBlock(t *testing.T) {
	block, err := domain.NewBlock(5, 3, testRange(t), []int{2, 6, 9}, 20)
	require.NoError(t, err)

	query, args, err := buildInsertBlock(block)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO blocks (id,check_in,check_out,discount_percent,created_at) VALUES ($1,$2,$3,$4,$5)",
		query)
	assert.Equal(t, int64(5), args[0])
	assert.Equal(t, 20, args[3])

	query, args, err = buildInsertBlockRooms(block)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO block_rooms (block_id,room_id,position) VALUES ($1,$2,$3),($4,$5,$6),($7,$8,$9)",
		query)
	assert.Equal(t, []interface{}{int64(5), 2, 0, int64(5), 6, 1, int64(5), 9, 2}, args)
}

func TestNormalizeRange(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	r := normalizeRange(domain.DateRange{
		CheckIn:  time.Date(2019, time.March, 19, 0, 0, 0, 0, loc),
		CheckOut: time.Date(2019, time.March, 23, 0, 0, 0, 0, loc),
	})

	assert.Equal(t, time.Date(2019, time.March, 19, 0, 0, 0, 0, time.UTC), r.CheckIn)
	assert.Equal(t, 4, r.Nights())
}

func TestOrderedBlocks_Find(t *testing.T) {
	blocks := orderedBlocks{{ID: 1}, {ID: 3}}

	assert.Equal(t, int64(3), blocks.find(3).ID)
	assert.Nil(t, blocks.find(2))
}

const (
	selectBlocksQuery       = "SELECT id, check_in, check_out, discount_percent, created_at FROM blocks ORDER BY id"
	selectBlockRoomsQuery   = "SELECT block_id, room_id FROM block_rooms ORDER BY block_id, position"
	selectReservationsQuery = "SELECT id, room_id, check_in, check_out, status, block_id, nightly_rate, discount_percent, created_at FROM reservations ORDER BY id"
	insertBlockQuery        = "INSERT INTO blocks (id,check_in,check_out,discount_percent,created_at) VALUES ($1,$2,$3,$4,$5)"
	insertBlockRoomsQuery   = "INSERT INTO block_rooms (block_id,room_id,position) VALUES ($1,$2,$3),($4,$5,$6)"
	insertReservationQuery  = "INSERT INTO reservations (id,room_id,check_in,check_out,status,block_id,nightly_rate,discount_percent,created_at) " +
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, txmanager.NewTransactionManager(db)), mock
}

func TestRepository_SaveReservation(t *testing.T) {
	blockID := int64(2)

	tests := []struct {
		name        string
		reservation *domain.Reservation
		wantBlockID interface{}
		execErr     error
		wantErr     error
	}{
		{
			name: "direct reservation",
			reservation: &domain.Reservation{
				ID: 7, RoomID: 3, Range: testRange(t), Status: domain.StatusReserved, NightlyRate: 200,
			},
			wantBlockID: nil,
		},
		{
			name: "reservation from block",
			reservation: &domain.Reservation{
				ID: 8, RoomID: 4, Range: testRange(t), Status: domain.StatusReserved,
				BlockID: &blockID, NightlyRate: 200, DiscountPercent: 20,
			},
			wantBlockID: int64(2),
		},
		{
			name: "exec failure",
			reservation: &domain.Reservation{
				ID: 9, RoomID: 5, Range: testRange(t), Status: domain.StatusReserved, NightlyRate: 200,
			},
			wantBlockID: nil,
			execErr:     errors.New("duplicate key"),
			wantErr:     ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			exec := mock.ExpectExec(insertReservationQuery).
				WithArgs(tt.reservation.ID, int64(tt.reservation.RoomID), sqlmock.AnyArg(), sqlmock.AnyArg(),
					"reserved", tt.wantBlockID, tt.reservation.NightlyRate,
					int64(tt.reservation.DiscountPercent), sqlmock.AnyArg())
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.SaveReservation(context.Background(), tt.reservation)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SaveBlock(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertBlockQuery).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(insertBlockRoomsQuery).
					WithArgs(int64(5), int64(2), int64(0), int64(5), int64(6), int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback when block rooms insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertBlockQuery).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(insertBlockRoomsQuery).WillReturnError(errors.New("foreign key violation"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecQuery,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantErr: txmanager.ErrTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			block, err := domain.NewBlock(5, 2, testRange(t), []int{2, 6, 9}, 20)
			require.NoError(t, err)

			err = repo.SaveBlock(context.Background(), block)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Load(t *testing.T) {
	repo, mock := newMockRepository(t)
	dates := testRange(t)
	createdAt := time.Date(2019, time.March, 1, 12, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+3", 3*60*60)
	checkIn := time.Date(2019, time.March, 19, 0, 0, 0, 0, loc)
	checkOut := time.Date(2019, time.March, 23, 0, 0, 0, 0, loc)

	mock.ExpectBegin()
	mock.ExpectQuery(selectBlocksQuery).WillReturnRows(
		sqlmock.NewRows(blockColumns).
			AddRow(int64(1), checkIn, checkOut, int64(20), createdAt),
	)
	mock.ExpectQuery(selectBlockRoomsQuery).WillReturnRows(
		sqlmock.NewRows([]string{"block_id", "room_id"}).
			AddRow(int64(1), int64(4)).
			AddRow(int64(1), int64(2)),
	)
	mock.ExpectQuery(selectReservationsQuery).WillReturnRows(
		sqlmock.NewRows(reservationColumns).
			AddRow(int64(1), int64(7), checkIn, checkOut, "reserved", nil, int64(200), int64(0), createdAt).
			AddRow(int64(2), int64(4), checkIn, checkOut, "reserved", int64(1), int64(200), int64(20), createdAt),
	)
	mock.ExpectCommit()

	snapshot, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, snapshot.Blocks, 1)
	block := snapshot.Blocks[0]
	assert.Equal(t, int64(1), block.ID)
	assert.Equal(t, 20, block.DiscountPercent)
	assert.Equal(t, dates, block.Range)
	assert.Equal(t, []domain.BlockRoom{
		{RoomID: 4, Status: domain.RoomBlocked},
		{RoomID: 2, Status: domain.RoomBlocked},
	}, block.Rooms)

	require.Len(t, snapshot.Reservations, 2)
	direct, fromBlock := snapshot.Reservations[0], snapshot.Reservations[1]

	assert.Equal(t, 7, direct.RoomID)
	assert.Nil(t, direct.BlockID)
	assert.Equal(t, domain.StatusReserved, direct.Status)
	assert.Equal(t, dates, direct.Range)

	require.NotNil(t, fromBlock.BlockID)
	assert.Equal(t, int64(1), *fromBlock.BlockID)
	assert.Equal(t, 20, fromBlock.DiscountPercent)
	assert.Equal(t, int64(200), fromBlock.NightlyRate)
}

func TestRepository_Load_Errors(t *testing.T) {
	checkIn := time.Date(2019, time.March, 19, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2019, time.March, 23, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2019, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "block room of unknown block",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectBlocksQuery).WillReturnRows(
					sqlmock.NewRows(blockColumns).AddRow(int64(1), checkIn, checkOut, int64(20), createdAt),
				)
				mock.ExpectQuery(selectBlockRoomsQuery).WillReturnRows(
					sqlmock.NewRows([]string{"block_id", "room_id"}).AddRow(int64(3), int64(4)),
				)
				mock.ExpectRollback()
			},
			wantErr: ErrCorrupted,
		},
		{
			name: "blocks query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectBlocksQuery).WillReturnError(errors.New("relation does not exist"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecQuery,
		},
		{
			name: "reservation row of wrong shape",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(selectBlocksQuery).WillReturnRows(sqlmock.NewRows(blockColumns))
				mock.ExpectQuery(selectBlockRoomsQuery).WillReturnRows(sqlmock.NewRows([]string{"block_id", "room_id"}))
				mock.ExpectQuery(selectReservationsQuery).WillReturnRows(
					sqlmock.NewRows(reservationColumns).
						AddRow(int64(1), "not a room", checkIn, checkOut, "reserved", nil, int64(200), int64(0), createdAt),
				)
				mock.ExpectRollback()
			},
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			snapshot, err := repo.Load(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, snapshot)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
