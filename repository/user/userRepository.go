package userrepo

import (
	"context"
	"database/sql"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
	SetAccountStatus(ctx context.Context, userID int64, status model.AccountStatus) error
	AccountStatusByUserID(ctx context.Context, userID int64) (model.AccountStatus, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const userCols = `
	u.id, u.account_id, u.full_name, u.email, u.phone, u.avatar_url, u.address,
	a.role, a.status`

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT ` + userCols + `
		FROM users u
		JOIN accounts a ON a.id = u.account_id
		ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.AccountID, &u.FullName, &u.Email, &u.Phone,
			&u.AvatarURL, &u.Address, &u.Role, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT ` + userCols + `
		FROM users u
		JOIN accounts a ON a.id = u.account_id
		WHERE u.id = $1`
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.AccountID, &u.FullName,
		&u.Email, &u.Phone, &u.AvatarURL, &u.Address, &u.Role, &u.Status)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) UpdateProfile(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE users
		SET full_name = $2, phone = $3, avatar_url = $4, address = $5
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.FullName, u.Phone, u.AvatarURL, u.Address)
	return err
}

func (r *repo) SetAccountStatus(ctx context.Context, userID int64, status model.AccountStatus) error {
	const q = `
		UPDATE accounts
		SET status = $2
		WHERE id = (SELECT account_id FROM users WHERE id = $1)`
	res, err := r.db.ExecContext(ctx, q, userID, status)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) AccountStatusByUserID(ctx context.Context, userID int64) (model.AccountStatus, error) {
	const q = `
		SELECT a.status
		FROM accounts a
		JOIN users u ON u.account_id = a.id
		WHERE u.id = $1`
	var s model.AccountStatus
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&s)
	return s, err
}
