package hostelrepo

import (
	"context"
	"database/sql"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type Repo interface {
	Create(ctx context.Context, h *model.Hostel) error
	List(ctx context.Context, ownerID *int64) ([]model.Hostel, error)
	ByID(ctx context.Context, id int64) (*model.Hostel, error)
	Update(ctx context.Context, h *model.Hostel) error
	Delete(ctx context.Context, id int64) error
	RoomCount(ctx context.Context, hostelID int64) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, h *model.Hostel) error {
	const q = `
		INSERT INTO hostels(owner_id, name, address, province, district, ward, description, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		h.OwnerID, h.Name, h.Address, h.Province, h.District, h.Ward, h.Description, h.Status,
	).Scan(&h.ID)
}

const hostelCols = `
	h.id, h.owner_id, h.name, h.address, h.province, h.district, h.ward,
	h.description, h.status,
	(SELECT COUNT(*) FROM rooms r WHERE r.hostel_id = h.id) AS room_count`

func (r *repo) List(ctx context.Context, ownerID *int64) ([]model.Hostel, error) {
	q := `SELECT ` + hostelCols + ` FROM hostels h`
	args := []any{}
	if ownerID != nil {
		q += ` WHERE h.owner_id = $1`
		args = append(args, *ownerID)
	}
	q += ` ORDER BY h.id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Hostel
	for rows.Next() {
		var h model.Hostel
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address, &h.Province,
			&h.District, &h.Ward, &h.Description, &h.Status, &h.RoomCount); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Hostel, error) {
	const q = `SELECT ` + hostelCols + ` FROM hostels h WHERE h.id = $1`
	h := &model.Hostel{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address,
		&h.Province, &h.District, &h.Ward, &h.Description, &h.Status, &h.RoomCount)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *repo) Update(ctx context.Context, h *model.Hostel) error {
	const q = `
		UPDATE hostels
		SET name = $2, address = $3, province = $4, district = $5, ward = $6,
			description = $7, status = $8
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q,
		h.ID, h.Name, h.Address, h.Province, h.District, h.Ward, h.Description, h.Status)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	return err
}

func (r *repo) RoomCount(ctx context.Context, hostelID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms WHERE hostel_id = $1`, hostelID).Scan(&n)
	return n, err
}
