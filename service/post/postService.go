package postsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	postrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/post"
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

type Repo = postrepo.Repo

// Rooms is consulted to verify the advertised room belongs to the poster.
type Rooms interface {
	ByID(ctx context.Context, id int64) (*model.Room, error)
}

type Service interface {
	Create(ctx context.Context, actorID int64, actorRole string, p *model.Post) error
	ListPublic(ctx context.Context) ([]model.Post, error)
	ListMine(ctx context.Context, ownerID int64) ([]model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, actorID int64, actorRole string, p *model.Post) error
	Delete(ctx context.Context, actorID int64, actorRole string, id int64) error
	SetStatus(ctx context.Context, actorID int64, actorRole string, id int64, status model.PostStatus) error
}

type service struct {
	r     Repo
	rooms Rooms
}

func New(r Repo, rooms Rooms) Service { return &service{r: r, rooms: rooms} }

func (s *service) Create(ctx context.Context, actorID int64, actorRole string, p *model.Post) error {
	if p.Title == "" || p.RoomID <= 0 {
		return makeErr(ErrBadInput)
	}
	rm, err := s.rooms.ByID(ctx, p.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrBadInput)
		}
		return err
	}
	if actorRole != model.RoleAdmin && rm.OwnerID != actorID {
		return makeErr(ErrForbidden)
	}
	if p.Status == "" {
		p.Status = model.PostVisible
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return s.r.Create(ctx, p)
}

func (s *service) ListPublic(ctx context.Context) ([]model.Post, error) {
	return s.r.ListVisible(ctx)
}

func (s *service) ListMine(ctx context.Context, ownerID int64) ([]model.Post, error) {
	return s.r.ListByOwner(ctx, ownerID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Post, error) {
	p, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) authorize(ctx context.Context, actorID int64, actorRole string, postID int64) error {
	ownerID, err := s.r.RoomOwner(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if actorRole != model.RoleAdmin && ownerID != actorID {
		return makeErr(ErrForbidden)
	}
	return nil
}

func (s *service) Update(ctx context.Context, actorID int64, actorRole string, p *model.Post) error {
	if p.Title == "" {
		return makeErr(ErrBadInput)
	}
	if err := s.authorize(ctx, actorID, actorRole, p.ID); err != nil {
		return err
	}
	return s.r.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, actorID int64, actorRole string, id int64) error {
	if err := s.authorize(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, actorID int64, actorRole string, id int64, status model.PostStatus) error {
	if status != model.PostVisible && status != model.PostHidden {
		return makeErr(ErrBadInput)
	}
	if err := s.authorize(ctx, actorID, actorRole, id); err != nil {
		return err
	}
	return s.r.SetStatus(ctx, id, status)
}
