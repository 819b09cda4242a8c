package requestrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

// LockedRequest is a rental request row locked for a status transition,
// joined with the room fields the transition needs.
type LockedRequest struct {
	ID          int64
	RoomID      int64
	RenterID    int64
	RequestType model.RequestType
	Status      model.RequestStatus
	RoomOwnerID int64
	RoomPrice   float64
	RoomDeposit float64
}

// ListItem is the owner/renter facing request row with room context.
type ListItem struct {
	ID          int64               `json:"id"`
	RoomID      int64               `json:"room_id"`
	RenterID    int64               `json:"renter_id"`
	RequestType model.RequestType   `json:"request_type"`
	Status      model.RequestStatus `json:"status"`
	SentAt      time.Time           `json:"sent_at"`
	Note        *string             `json:"note,omitempty"`
	RoomTitle   string              `json:"room_title"`
	HostelName  *string             `json:"hostel_name,omitempty"`
}

type Repo interface {
	Insert(ctx context.Context, rr *model.RentalRequest) error
	ByID(ctx context.Context, id int64) (*model.RentalRequest, error)
	ListAll(ctx context.Context) ([]ListItem, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]ListItem, error)
	ListMine(ctx context.Context, renterID int64) ([]ListItem, error)
	PendingCount(ctx context.Context, ownerID *int64) (int64, error)

	// transition step, all inside the caller's transaction
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*LockedRequest, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id int64, status model.RequestStatus) error
	SetRoomStatus(ctx context.Context, tx *sql.Tx, roomID int64, status model.RoomStatus) error
	FlipPostVisibility(ctx context.Context, tx *sql.Tx, roomID int64, from, to model.PostStatus) (int64, error)
	RentalInfoExists(ctx context.Context, tx *sql.Tx, requestID int64) (bool, error)
	InsertRentalInfo(ctx context.Context, tx *sql.Tx, info *model.RentalInfo) error
	CloseActiveRentalInfo(ctx context.Context, tx *sql.Tx, roomID, renterID int64, end time.Time) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, rr *model.RentalRequest) error {
	const q = `
		INSERT INTO rental_requests(room_id, renter_id, request_type, status, note)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, sent_at`
	return r.db.QueryRowContext(ctx, q,
		rr.RoomID, rr.RenterID, rr.RequestType, rr.Status, rr.Note,
	).Scan(&rr.ID, &rr.SentAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.RentalRequest, error) {
	const q = `
		SELECT id, room_id, renter_id, request_type, status, sent_at, note
		FROM rental_requests
		WHERE id = $1`
	rr := &model.RentalRequest{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rr.ID, &rr.RoomID, &rr.RenterID,
		&rr.RequestType, &rr.Status, &rr.SentAt, &rr.Note)
	if err != nil {
		return nil, err
	}
	return rr, nil
}

const listSelect = `
	SELECT rr.id, rr.room_id, rr.renter_id, rr.request_type, rr.status,
		rr.sent_at, rr.note, rm.title, h.name
	FROM rental_requests rr
	JOIN rooms rm ON rm.id = rr.room_id
	LEFT JOIN hostels h ON h.id = rm.hostel_id`

func (r *repo) listItems(ctx context.Context, q string, args ...any) ([]ListItem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListItem
	for rows.Next() {
		var it ListItem
		if err := rows.Scan(&it.ID, &it.RoomID, &it.RenterID, &it.RequestType,
			&it.Status, &it.SentAt, &it.Note, &it.RoomTitle, &it.HostelName); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) ListAll(ctx context.Context) ([]ListItem, error) {
	return r.listItems(ctx, listSelect+` ORDER BY rr.sent_at DESC, rr.id DESC`)
}

func (r *repo) ListForOwner(ctx context.Context, ownerID int64) ([]ListItem, error) {
	return r.listItems(ctx,
		listSelect+` WHERE rm.owner_id = $1 ORDER BY rr.sent_at DESC, rr.id DESC`, ownerID)
}

func (r *repo) ListMine(ctx context.Context, renterID int64) ([]ListItem, error) {
	return r.listItems(ctx,
		listSelect+` WHERE rr.renter_id = $1 ORDER BY rr.sent_at DESC, rr.id DESC`, renterID)
}

func (r *repo) PendingCount(ctx context.Context, ownerID *int64) (int64, error) {
	q := `
		SELECT COUNT(*)
		FROM rental_requests rr
		JOIN rooms rm ON rm.id = rr.room_id
		WHERE rr.status = 'PENDING'`
	args := []any{}
	if ownerID != nil {
		q += ` AND rm.owner_id = $1`
		args = append(args, *ownerID)
	}
	var n int64
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*LockedRequest, error) {
	// Lock the request row so concurrent transitions for the same id
	// serialize; the second one sees the updated status and no-ops.
	const q = `
		SELECT rr.id, rr.room_id, rr.renter_id, rr.request_type, rr.status,
			rm.owner_id, rm.price, rm.deposit
		FROM rental_requests rr
		JOIN rooms rm ON rm.id = rr.room_id
		WHERE rr.id = $1
		FOR UPDATE OF rr`
	lr := &LockedRequest{}
	err := tx.QueryRowContext(ctx, q, id).Scan(&lr.ID, &lr.RoomID, &lr.RenterID,
		&lr.RequestType, &lr.Status, &lr.RoomOwnerID, &lr.RoomPrice, &lr.RoomDeposit)
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *repo) SetStatus(ctx context.Context, tx *sql.Tx, id int64, status model.RequestStatus) error {
	const q = `
		UPDATE rental_requests
		SET status = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status)
	return err
}

func (r *repo) SetRoomStatus(ctx context.Context, tx *sql.Tx, roomID int64, status model.RoomStatus) error {
	const q = `
		UPDATE rooms
		SET status = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, roomID, status)
	return err
}

func (r *repo) FlipPostVisibility(ctx context.Context, tx *sql.Tx, roomID int64, from, to model.PostStatus) (int64, error) {
	// Only rows in the source state move, so re-applying is a no-op.
	const q = `
		UPDATE posts
		SET status = $3
		WHERE room_id = $1
		AND status = $2`
	res, err := tx.ExecContext(ctx, q, roomID, from, to)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}

func (r *repo) RentalInfoExists(ctx context.Context, tx *sql.Tx, requestID int64) (bool, error) {
	var ok bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM rental_infos WHERE request_id = $1)`, requestID).Scan(&ok)
	return ok, err
}

func (r *repo) InsertRentalInfo(ctx context.Context, tx *sql.Tx, info *model.RentalInfo) error {
	const q = `
		INSERT INTO rental_infos(room_id, renter_id, request_id, start_date, monthly_price, deposit, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`
	return tx.QueryRowContext(ctx, q,
		info.RoomID, info.RenterID, info.RequestID, info.StartDate,
		info.MonthlyPrice, info.Deposit, info.Status,
	).Scan(&info.ID)
}

func (r *repo) CloseActiveRentalInfo(ctx context.Context, tx *sql.Tx, roomID, renterID int64, end time.Time) (int64, error) {
	const q = `
		UPDATE rental_infos
		SET end_date = $3, status = 'ENDED'
		WHERE room_id = $1
		AND renter_id = $2
		AND end_date IS NULL`
	res, err := tx.ExecContext(ctx, q, roomID, renterID, end)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
