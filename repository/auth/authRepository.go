package auth

import (
	"context"
	"database/sql"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

// Credential is the join of a user row with its account, used for login.
type Credential struct {
	UserID       int64
	AccountID    int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
}

type Repo interface {
	CreateAccount(ctx context.Context, tx *sql.Tx, a *model.Account) error
	CreateUser(ctx context.Context, tx *sql.Tx, u *model.User) error
	ByUsernameOrEmail(ctx context.Context, v string) (*Credential, error)
	PasswordHashByUserID(ctx context.Context, userID int64) (string, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) CreateAccount(ctx context.Context, tx *sql.Tx, a *model.Account) error {
	const q = `
		INSERT INTO accounts(username, password_hash, role, status)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	return tx.QueryRowContext(ctx, q, a.Username, a.PasswordHash, a.Role, a.Status).Scan(&a.ID)
}

func (r *repo) CreateUser(ctx context.Context, tx *sql.Tx, u *model.User) error {
	const q = `
		INSERT INTO users(account_id, full_name, email, phone, address)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	return tx.QueryRowContext(ctx, q, u.AccountID, u.FullName, u.Email, u.Phone, u.Address).Scan(&u.ID)
}

func (r *repo) ByUsernameOrEmail(ctx context.Context, v string) (*Credential, error) {
	const q = `
		SELECT u.id, a.id, u.full_name, u.email, a.password_hash, a.role, a.status
		FROM accounts a
		JOIN users u ON u.account_id = a.id
		WHERE a.username = $1 OR lower(u.email) = lower($1)`
	c := &Credential{}
	err := r.db.QueryRowContext(ctx, q, v).Scan(
		&c.UserID, &c.AccountID, &c.FullName, &c.Email, &c.PasswordHash, &c.Role, &c.Status,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) PasswordHashByUserID(ctx context.Context, userID int64) (string, error) {
	const q = `
		SELECT a.password_hash
		FROM accounts a
		JOIN users u ON u.account_id = a.id
		WHERE u.id = $1`
	var h string
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&h)
	return h, err
}

func (r *repo) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	const q = `
		UPDATE accounts
		SET password_hash = $2
		WHERE id = (SELECT account_id FROM users WHERE id = $1)`
	_, err := r.db.ExecContext(ctx, q, userID, hash)
	return err
}
