package reviewrepo

import (
	"context"
	"database/sql"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type Repo interface {
	Create(ctx context.Context, rv *model.Review) error
	ListByRoom(ctx context.Context, roomID int64) ([]model.Review, error)
	ByID(ctx context.Context, id int64) (*model.Review, error)
	Update(ctx context.Context, rv *model.Review) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, rv *model.Review) error {
	const q = `
		INSERT INTO reviews(room_id, renter_id, rating, comment)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		rv.RoomID, rv.RenterID, rv.Rating, rv.Comment,
	).Scan(&rv.ID, &rv.CreatedAt)
}

func (r *repo) ListByRoom(ctx context.Context, roomID int64) ([]model.Review, error) {
	const q = `
		SELECT id, room_id, renter_id, rating, comment, created_at
		FROM reviews
		WHERE room_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.RoomID, &rv.RenterID, &rv.Rating,
			&rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Review, error) {
	const q = `
		SELECT id, room_id, renter_id, rating, comment, created_at
		FROM reviews
		WHERE id = $1`
	rv := &model.Review{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rv.ID, &rv.RoomID, &rv.RenterID,
		&rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *repo) Update(ctx context.Context, rv *model.Review) error {
	const q = `
		UPDATE reviews
		SET rating = $2, comment = $3
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, rv.ID, rv.Rating, rv.Comment)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}
