package rentalinfo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	rirepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/rentalinfo"
)

type ErrCode string

const (
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrForbidden ErrCode = "FORBIDDEN"
	ErrBadRoom   ErrCode = "BAD_ROOM"
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

type (
	CurrentRenter = rirepo.CurrentRenter
	HistoryRow    = rirepo.HistoryRow
)

type Repo = rirepo.Repo

type Service interface {
	// CurrentByRoom returns the active tenancy of a room, or NOT_FOUND when
	// the room is unoccupied. Owners only see their own rooms.
	CurrentByRoom(ctx context.Context, actorID int64, actorRole string, roomID int64) (*CurrentRenter, error)

	// MyHistory lists the caller's tenancies, newest start date first.
	MyHistory(ctx context.Context, renterID int64) ([]HistoryRow, error)

	List(ctx context.Context, roomID *int64) ([]model.RentalInfo, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) CurrentByRoom(ctx context.Context, actorID int64, actorRole string, roomID int64) (*CurrentRenter, error) {
	if roomID <= 0 {
		return nil, makeErr(ErrBadRoom)
	}
	cur, err := s.r.CurrentByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if actorRole != model.RoleAdmin && cur.RoomOwnerID != actorID {
		return nil, makeErr(ErrForbidden)
	}
	return cur, nil
}

func (s *service) MyHistory(ctx context.Context, renterID int64) ([]HistoryRow, error) {
	return s.r.ListMine(ctx, renterID)
}

func (s *service) List(ctx context.Context, roomID *int64) ([]model.RentalInfo, error) {
	return s.r.List(ctx, roomID)
}
