package requestrepo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestInsertReturnsGeneratedFields(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	sent := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rental_requests")).
		WithArgs(int64(3), int64(7), "RENT", "PENDING", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sent_at"}).AddRow(int64(41), sent))

	rr := &model.RentalRequest{
		RoomID:      3,
		RenterID:    7,
		RequestType: model.RequestRent,
		Status:      model.RequestPending,
	}
	require.NoError(t, r.Insert(context.Background(), rr))
	require.Equal(t, int64(41), rr.ID)
	require.Equal(t, sent, rr.SentAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdateLocksRowWithRoomFields(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF rr")).
		WithArgs(int64(41)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "renter_id", "request_type", "status", "owner_id", "price", "deposit",
		}).AddRow(int64(41), int64(3), int64(7), "RENT", "PENDING", int64(2), 350.0, 700.0))

	tx, err := db.Begin()
	require.NoError(t, err)

	lr, err := r.GetForUpdate(context.Background(), tx, 41)
	require.NoError(t, err)
	require.Equal(t, int64(2), lr.RoomOwnerID)
	require.Equal(t, model.RequestPending, lr.Status)
	require.Equal(t, 350.0, lr.RoomPrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingCountScopesToOwner(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	owner := int64(2)
	mock.ExpectQuery(regexp.QuoteMeta("AND rm.owner_id = $1")).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := r.PendingCount(context.Background(), &owner)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingCountUnscopedForAdmin(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE rr.status = 'PENDING'")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(9)))

	n, err := r.PendingCount(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, int64(9), n)
}

func TestFlipPostVisibilityOnlyMovesSourceState(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
		WithArgs(int64(3), "VISIBLE", "HIDDEN").
		WillReturnResult(sqlmock.NewResult(0, 2))

	tx, err := db.Begin()
	require.NoError(t, err)

	n, err := r.FlipPostVisibility(context.Background(), tx, 3, model.PostVisible, model.PostHidden)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseActiveRentalInfoTargetsOpenRow(t *testing.T) {
	db, mock := newMock(t)
	r := New(db)

	end := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("AND end_date IS NULL")).
		WithArgs(int64(3), int64(7), end).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	n, err := r.CloseActiveRentalInfo(context.Background(), tx, 3, 7, end)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
