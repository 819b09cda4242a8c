package hostelsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	hostelrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/hostel"
)

type ErrCode string

const (
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrForbidden ErrCode = "FORBIDDEN"
	ErrBadInput  ErrCode = "BAD_INPUT"
	ErrHasRooms  ErrCode = "HAS_ROOMS"
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

type Repo = hostelrepo.Repo

type Service interface {
	Create(ctx context.Context, ownerID int64, h *model.Hostel) error
	List(ctx context.Context, actorID int64, actorRole string) ([]model.Hostel, error)
	Get(ctx context.Context, id int64) (*model.Hostel, error)
	Update(ctx context.Context, actorID int64, actorRole string, h *model.Hostel) error
	Delete(ctx context.Context, actorID int64, actorRole string, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, ownerID int64, h *model.Hostel) error {
	if h.Name == "" {
		return makeErr(ErrBadInput)
	}
	h.OwnerID = ownerID
	if h.Status == "" {
		h.Status = "ACTIVE"
	}
	return s.r.Create(ctx, h)
}

func (s *service) List(ctx context.Context, actorID int64, actorRole string) ([]model.Hostel, error) {
	if actorRole == model.RoleAdmin {
		return s.r.List(ctx, nil)
	}
	return s.r.List(ctx, &actorID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Hostel, error) {
	h, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return h, nil
}

func (s *service) authorize(ctx context.Context, actorID int64, actorRole string, id int64) (*model.Hostel, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != model.RoleAdmin && h.OwnerID != actorID {
		return nil, makeErr(ErrForbidden)
	}
	return h, nil
}

func (s *service) Update(ctx context.Context, actorID int64, actorRole string, h *model.Hostel) error {
	if h.Name == "" {
		return makeErr(ErrBadInput)
	}
	if _, err := s.authorize(ctx, actorID, actorRole, h.ID); err != nil {
		return err
	}
	return s.r.Update(ctx, h)
}

func (s *service) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	if _, err := s.authorize(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	n, err := s.r.RoomCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return makeErr(ErrHasRooms)
	}
	return s.r.Delete(ctx, id)
}
