package usersvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	usersvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/user"
)

type repoMock struct {
	listFn      func(ctx context.Context) ([]model.User, error)
	byIDFn      func(ctx context.Context, id int64) (*model.User, error)
	updateFn    func(ctx context.Context, u *model.User) error
	setStatusFn func(ctx context.Context, userID int64, status model.AccountStatus) error
	statusFn    func(ctx context.Context, userID int64) (model.AccountStatus, error)
}

func (m *repoMock) List(ctx context.Context) ([]model.User, error) { return m.listFn(ctx) }
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) UpdateProfile(ctx context.Context, u *model.User) error {
	return m.updateFn(ctx, u)
}
func (m *repoMock) SetAccountStatus(ctx context.Context, userID int64, status model.AccountStatus) error {
	return m.setStatusFn(ctx, userID, status)
}
func (m *repoMock) AccountStatusByUserID(ctx context.Context, userID int64) (model.AccountStatus, error) {
	return m.statusFn(ctx, userID)
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) { return nil, sql.ErrNoRows },
	}
	s := usersvc.New(m)
	_, err := s.Get(context.Background(), 9)
	if usersvc.Code(err) != usersvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestUpdateProfile_RequiresName(t *testing.T) {
	s := usersvc.New(&repoMock{})
	err := s.UpdateProfile(context.Background(), &model.User{ID: 7})
	if usersvc.Code(err) != usersvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT", err)
	}
}

func TestToggleStatus_LocksActiveAccount(t *testing.T) {
	var written model.AccountStatus
	m := &repoMock{
		statusFn: func(ctx context.Context, userID int64) (model.AccountStatus, error) {
			return model.AccountActive, nil
		},
		setStatusFn: func(ctx context.Context, userID int64, status model.AccountStatus) error {
			written = status
			return nil
		},
	}
	s := usersvc.New(m)
	next, err := s.ToggleStatus(context.Background(), 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != model.AccountLocked || written != model.AccountLocked {
		t.Fatalf("got next=%q written=%q; want LOCKED", next, written)
	}
}

func TestToggleStatus_UnlocksLockedAccount(t *testing.T) {
	m := &repoMock{
		statusFn: func(ctx context.Context, userID int64) (model.AccountStatus, error) {
			return model.AccountLocked, nil
		},
		setStatusFn: func(ctx context.Context, userID int64, status model.AccountStatus) error {
			return nil
		},
	}
	s := usersvc.New(m)
	next, err := s.ToggleStatus(context.Background(), 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != model.AccountActive {
		t.Fatalf("got %q; want ACTIVE", next)
	}
}
