package postrepo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type Repo interface {
	Create(ctx context.Context, p *model.Post) error
	ListVisible(ctx context.Context) ([]model.Post, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error)
	ByID(ctx context.Context, id int64) (*model.Post, error)
	RoomOwner(ctx context.Context, postID int64) (int64, error)
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status model.PostStatus) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const postCols = `id, room_id, title, description, status, images, created_at`

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	p := &model.Post{}
	var images []byte
	if err := row.Scan(&p.ID, &p.RoomID, &p.Title, &p.Description, &p.Status,
		&images, &p.CreatedAt); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *repo) Create(ctx context.Context, p *model.Post) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO posts(room_id, title, description, status, images)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		p.RoomID, p.Title, p.Description, p.Status, images,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *repo) ListVisible(ctx context.Context) ([]model.Post, error) {
	const q = `
		SELECT ` + postCols + `
		FROM posts
		WHERE status = 'VISIBLE'
		ORDER BY created_at DESC, id DESC`
	return r.list(ctx, q)
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error) {
	const q = `
		SELECT p.id, p.room_id, p.title, p.description, p.status, p.images, p.created_at
		FROM posts p
		JOIN rooms rm ON rm.id = p.room_id
		WHERE rm.owner_id = $1
		ORDER BY p.created_at DESC, p.id DESC`
	return r.list(ctx, q, ownerID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Post, error) {
	const q = `SELECT ` + postCols + ` FROM posts WHERE id = $1`
	return scanPost(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) RoomOwner(ctx context.Context, postID int64) (int64, error) {
	const q = `
		SELECT rm.owner_id
		FROM posts p
		JOIN rooms rm ON rm.id = p.room_id
		WHERE p.id = $1`
	var ownerID int64
	err := r.db.QueryRowContext(ctx, q, postID).Scan(&ownerID)
	return ownerID, err
}

func (r *repo) Update(ctx context.Context, p *model.Post) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	const q = `
		UPDATE posts
		SET title = $2, description = $3, images = $4
		WHERE id = $1`
	_, err = r.db.ExecContext(ctx, q, p.ID, p.Title, p.Description, images)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.PostStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
