package roomsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	roomrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/room"
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

type Filter = roomrepo.Filter

type Repo = roomrepo.Repo

type Service interface {
	Create(ctx context.Context, ownerID int64, rm *model.Room) error
	List(ctx context.Context, f Filter) ([]model.Room, error)
	Get(ctx context.Context, id int64) (*model.Room, error)
	Update(ctx context.Context, actorID int64, actorRole string, rm *model.Room) error
	Delete(ctx context.Context, actorID int64, actorRole string, id int64) error
	SetStatus(ctx context.Context, actorID int64, actorRole string, id int64, status model.RoomStatus) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, ownerID int64, rm *model.Room) error {
	if rm.Title == "" || rm.Price < 0 || rm.Deposit < 0 {
		return makeErr(ErrBadInput)
	}
	rm.OwnerID = ownerID
	if rm.Status == "" {
		rm.Status = model.RoomAvailable
	}
	return s.r.Create(ctx, rm)
}

func (s *service) List(ctx context.Context, f Filter) ([]model.Room, error) {
	return s.r.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Room, error) {
	rm, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return rm, nil
}

func (s *service) authorize(ctx context.Context, actorID int64, actorRole string, id int64) error {
	rm, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != model.RoleAdmin && rm.OwnerID != actorID {
		return makeErr(ErrForbidden)
	}
	return nil
}

func (s *service) Update(ctx context.Context, actorID int64, actorRole string, rm *model.Room) error {
	if rm.Title == "" || rm.Price < 0 || rm.Deposit < 0 {
		return makeErr(ErrBadInput)
	}
	if err := s.authorize(ctx, actorID, actorRole, rm.ID); err != nil {
		return err
	}
	return s.r.Update(ctx, rm)
}

func (s *service) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	if err := s.authorize(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, actorID int64, actorRole string, id int64, status model.RoomStatus) error {
	if status != model.RoomAvailable && status != model.RoomRented {
		return makeErr(ErrBadInput)
	}
	if err := s.authorize(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.r.SetStatus(ctx, id, status)
}
