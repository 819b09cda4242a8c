package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	authrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/auth"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/util/hash"
)

type mockRepo struct {
	createAccountFn func(ctx context.Context, tx *sql.Tx, a *model.Account) error
	createUserFn    func(ctx context.Context, tx *sql.Tx, u *model.User) error
	byLoginFn       func(ctx context.Context, v string) (*authrepo.Credential, error)
	hashFn          func(ctx context.Context, userID int64) (string, error)
	updatePassFn    func(ctx context.Context, userID int64, hash string) error
}

var _ authrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) CreateAccount(ctx context.Context, tx *sql.Tx, a *model.Account) error {
	if m.createAccountFn == nil {
		a.ID = 1
		return nil
	}
	return m.createAccountFn(ctx, tx, a)
}

func (m *mockRepo) CreateUser(ctx context.Context, tx *sql.Tx, u *model.User) error {
	if m.createUserFn == nil {
		u.ID = 42
		return nil
	}
	return m.createUserFn(ctx, tx, u)
}

func (m *mockRepo) ByUsernameOrEmail(ctx context.Context, v string) (*authrepo.Credential, error) {
	if m.byLoginFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byLoginFn(ctx, v)
}

func (m *mockRepo) PasswordHashByUserID(ctx context.Context, userID int64) (string, error) {
	return m.hashFn(ctx, userID)
}

func (m *mockRepo) UpdatePassword(ctx context.Context, userID int64, h string) error {
	return m.updatePassFn(ctx, userID, h)
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := New(db, &mockRepo{}, "test-secret", 24)

	u, tok, err := svc.Register(context.Background(), model.RegisterReq{
		FullName: "Tri Pham",
		Email:    "USER@Example.COM",
		Password: "supersecret",
		Role:     "owner",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleOwner, u.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_BadInput(t *testing.T) {
	db, _ := newTestDB(t)
	svc := New(db, &mockRepo{}, "test-secret", 24)

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    " ",
		Password: "123",
	})
	require.ErrorIs(t, err, ErrBadInput)

	_, _, err = svc.Register(context.Background(), model.RegisterReq{
		Email:    "a@b.c",
		Password: "123456",
		Role:     "admin",
	})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestRegister_CreateError(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	m := &mockRepo{
		createAccountFn: func(ctx context.Context, tx *sql.Tx, a *model.Account) error {
			return errors.New("db down")
		},
	}
	svc := New(db, m, "test-secret", 24)

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		FullName: "X",
		Email:    "ok@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	db, _ := newTestDB(t)
	hashed := mustHash(t, "supersecret")

	m := &mockRepo{
		byLoginFn: func(ctx context.Context, v string) (*authrepo.Credential, error) {
			return &authrepo.Credential{
				UserID: 7, AccountID: 2,
				FullName: "Tri Pham", Email: "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleRenter,
				Status:       string(model.AccountActive),
			}, nil
		},
	}
	svc := New(db, m, "test-secret", 24)

	u, tok, err := svc.Login(context.Background(), model.LoginReq{
		UsernameOrEmail: "user@example.com",
		Password:        "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newTestDB(t)
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byLoginFn: func(ctx context.Context, v string) (*authrepo.Credential, error) {
			return &authrepo.Credential{
				UserID: 7, PasswordHash: hashed,
				Status: string(model.AccountActive),
			}, nil
		},
	}
	svc := New(db, m, "test-secret", 24)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		UsernameOrEmail: "user@example.com",
		Password:        "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownUser(t *testing.T) {
	db, _ := newTestDB(t)
	svc := New(db, &mockRepo{}, "test-secret", 24)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		UsernameOrEmail: "missing@example.com",
		Password:        "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_LockedAccount(t *testing.T) {
	db, _ := newTestDB(t)
	hashed := mustHash(t, "supersecret")

	m := &mockRepo{
		byLoginFn: func(ctx context.Context, v string) (*authrepo.Credential, error) {
			return &authrepo.Credential{
				UserID: 7, PasswordHash: hashed,
				Status: string(model.AccountLocked),
			}, nil
		},
	}
	svc := New(db, m, "test-secret", 24)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		UsernameOrEmail: "user@example.com",
		Password:        "supersecret",
	})
	require.ErrorIs(t, err, ErrLocked)
}

func TestChangePassword(t *testing.T) {
	db, _ := newTestDB(t)
	hashed := mustHash(t, "old-password")

	var stored string
	var lookedUp, updated int64
	m := &mockRepo{
		hashFn: func(ctx context.Context, userID int64) (string, error) {
			lookedUp = userID
			return hashed, nil
		},
		updatePassFn: func(ctx context.Context, userID int64, h string) error {
			updated = userID
			stored = h
			return nil
		},
	}
	svc := New(db, m, "test-secret", 24)

	err := svc.ChangePassword(context.Background(), 2, "wrong", "new-password")
	require.ErrorIs(t, err, ErrWrongOldPass)

	err = svc.ChangePassword(context.Background(), 2, "old-password", "new-password")
	require.NoError(t, err)
	require.True(t, hash.Check(stored, "new-password"))

	// both repo calls are keyed by the caller's user id
	require.Equal(t, int64(2), lookedUp)
	require.Equal(t, int64(2), updated)
}
