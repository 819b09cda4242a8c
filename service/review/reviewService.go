package reviewsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	reviewrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/review"
)

type ErrCode string

const (
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrForbidden ErrCode = "FORBIDDEN"
	ErrBadInput  ErrCode = "BAD_INPUT"
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

type Repo = reviewrepo.Repo

type Service interface {
	Create(ctx context.Context, renterID int64, rv *model.Review) error
	ListByRoom(ctx context.Context, roomID int64) ([]model.Review, error)
	Update(ctx context.Context, renterID int64, rv *model.Review) error
	Delete(ctx context.Context, renterID int64, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, renterID int64, rv *model.Review) error {
	if rv.RoomID <= 0 || rv.Rating < 1 || rv.Rating > 5 {
		return makeErr(ErrBadInput)
	}
	rv.RenterID = renterID
	return s.r.Create(ctx, rv)
}

func (s *service) ListByRoom(ctx context.Context, roomID int64) ([]model.Review, error) {
	return s.r.ListByRoom(ctx, roomID)
}

func (s *service) own(ctx context.Context, renterID, id int64) error {
	rv, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if rv.RenterID != renterID {
		return makeErr(ErrForbidden)
	}
	return nil
}

func (s *service) Update(ctx context.Context, renterID int64, rv *model.Review) error {
	if rv.Rating < 1 || rv.Rating > 5 {
		return makeErr(ErrBadInput)
	}
	if err := s.own(ctx, renterID, rv.ID); err != nil {
		return err
	}
	return s.r.Update(ctx, rv)
}

func (s *service) Delete(ctx context.Context, renterID int64, id int64) error {
	if err := s.own(ctx, renterID, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
