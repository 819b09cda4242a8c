package usersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	userrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/user"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo = userrepo.Repo

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, u *model.User) error
	ToggleStatus(ctx context.Context, id int64) (model.AccountStatus, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, u *model.User) error {
	if u.FullName == "" {
		return makeErr(ErrBadInput)
	}
	return s.r.UpdateProfile(ctx, u)
}

// ToggleStatus flips an account between ACTIVE and LOCKED and reports the
// resulting state. Used by admins to moderate accounts.
func (s *service) ToggleStatus(ctx context.Context, id int64) (model.AccountStatus, error) {
	cur, err := s.r.AccountStatusByUserID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", makeErr(ErrNotFound)
		}
		return "", err
	}
	next := model.AccountLocked
	if cur == model.AccountLocked {
		next = model.AccountActive
	}
	if err := s.r.SetAccountStatus(ctx, id, next); err != nil {
		return "", err
	}
	return next, nil
}
