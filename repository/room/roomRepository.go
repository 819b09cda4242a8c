package roomrepo

import (
	"context"
	"database/sql"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type Filter struct {
	OwnerID  *int64
	HostelID *int64
}

type Repo interface {
	Create(ctx context.Context, rm *model.Room) error
	List(ctx context.Context, f Filter) ([]model.Room, error)
	ByID(ctx context.Context, id int64) (*model.Room, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, rm *model.Room) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status model.RoomStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const roomCols = `id, owner_id, hostel_id, title, area, price, deposit, utilities, status`

func (r *repo) Create(ctx context.Context, rm *model.Room) error {
	const q = `
		INSERT INTO rooms(owner_id, hostel_id, title, area, price, deposit, utilities, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		rm.OwnerID, rm.HostelID, rm.Title, rm.Area, rm.Price, rm.Deposit, rm.Utilities, rm.Status,
	).Scan(&rm.ID)
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.Room, error) {
	q := `SELECT ` + roomCols + ` FROM rooms`
	args := []any{}
	switch {
	case f.OwnerID != nil:
		q += ` WHERE owner_id = $1`
		args = append(args, *f.OwnerID)
	case f.HostelID != nil:
		q += ` WHERE hostel_id = $1`
		args = append(args, *f.HostelID)
	}
	q += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.OwnerID, &rm.HostelID, &rm.Title, &rm.Area,
			&rm.Price, &rm.Deposit, &rm.Utilities, &rm.Status); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE id = $1`
	rm := &model.Room{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.OwnerID, &rm.HostelID,
		&rm.Title, &rm.Area, &rm.Price, &rm.Deposit, &rm.Utilities, &rm.Status)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *repo) Update(ctx context.Context, rm *model.Room) error {
	const q = `
		UPDATE rooms
		SET hostel_id = $2, title = $3, area = $4, price = $5, deposit = $6, utilities = $7
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q,
		rm.ID, rm.HostelID, rm.Title, rm.Area, rm.Price, rm.Deposit, rm.Utilities)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.RoomStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
