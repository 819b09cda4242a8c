package request

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	requestrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/request"
)

// errors used by controllers

type ErrCode string

const (
	ErrRoomNotFound   ErrCode = "ROOM_NOT_FOUND"
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrAlreadyDecided ErrCode = "ALREADY_DECIDED"
	ErrDuplicateInfo  ErrCode = "DUPLICATE_RENTAL_INFO"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type ListItem = requestrepo.ListItem

type Repo = requestrepo.Repo

// Rooms is the slice of the room store the workflow consults.
type Rooms interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	// Create appends a PENDING request to the ledger. No side effects on
	// rooms or rental infos.
	Create(ctx context.Context, renterID, roomID int64, reqType model.RequestType, note *string) (*model.RentalRequest, error)

	// UpdateStatus transitions PENDING -> ACCEPTED/REJECTED and applies the
	// compound side effects in one transaction. Replaying an already applied
	// target is a no-op success.
	UpdateStatus(ctx context.Context, actorID int64, actorRole string, id int64, target model.RequestStatus) error

	ListForActor(ctx context.Context, actorID int64, actorRole string) ([]ListItem, error)
	ListMine(ctx context.Context, renterID int64) ([]ListItem, error)
	PendingCount(ctx context.Context, actorID int64, actorRole string) (int64, error)
	Get(ctx context.Context, id int64) (*model.RentalRequest, error)
}

// ----- Service implementation -----

type service struct {
	db    *sql.DB
	r     Repo
	rooms Rooms
}

func New(db *sql.DB, r Repo, rooms Rooms) Service {
	return &service{db: db, r: r, rooms: rooms}
}

func (s *service) Create(ctx context.Context, renterID, roomID int64, reqType model.RequestType, note *string) (*model.RentalRequest, error) {
	if roomID <= 0 {
		return nil, makeErr(ErrRoomNotFound)
	}
	exists, err := s.rooms.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, makeErr(ErrRoomNotFound)
	}

	rr := &model.RentalRequest{
		RoomID:      roomID,
		RenterID:    renterID,
		RequestType: reqType,
		Status:      model.RequestPending,
		Note:        note,
	}
	if err := s.r.Insert(ctx, rr); err != nil {
		return nil, err
	}
	return rr, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID int64, actorRole string, id int64, target model.RequestStatus) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	lr, err := s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}

	// Owners may only decide requests targeting their own rooms.
	if actorRole != model.RoleAdmin && lr.RoomOwnerID != actorID {
		return makeErr(ErrForbidden)
	}

	// Idempotent replay: the first transition already did the work.
	if lr.Status == target {
		return tx.Commit()
	}
	if lr.Status != model.RequestPending {
		return makeErr(ErrAlreadyDecided)
	}

	if err = s.r.SetStatus(ctx, tx, id, target); err != nil {
		return err
	}

	if target == model.RequestAccepted {
		if err = s.applyAccept(ctx, tx, lr); err != nil {
			return err
		}
	}
	// REJECTED changes the request status only.

	return tx.Commit()
}

func (s *service) applyAccept(ctx context.Context, tx *sql.Tx, lr *requestrepo.LockedRequest) error {
	now := time.Now().UTC()

	switch lr.RequestType {
	case model.RequestRent:
		if err := s.r.SetRoomStatus(ctx, tx, lr.RoomID, model.RoomRented); err != nil {
			return err
		}
		if _, err := s.r.FlipPostVisibility(ctx, tx, lr.RoomID, model.PostVisible, model.PostHidden); err != nil {
			return err
		}
		exists, err := s.r.RentalInfoExists(ctx, tx, lr.ID)
		if err != nil {
			return err
		}
		if !exists {
			info := &model.RentalInfo{
				RoomID:       lr.RoomID,
				RenterID:     lr.RenterID,
				RequestID:    lr.ID,
				StartDate:    now,
				MonthlyPrice: lr.RoomPrice,
				Deposit:      lr.RoomDeposit,
				Status:       model.RentalActive,
			}
			if err := s.r.InsertRentalInfo(ctx, tx, info); err != nil {
				if isUniqueViolation(err) {
					return makeErr(ErrDuplicateInfo)
				}
				return err
			}
		}

	case model.RequestReturn:
		// The room flips back even when no active tenancy is on record;
		// a drifted ledger must not wedge the room in "rented".
		if _, err := s.r.CloseActiveRentalInfo(ctx, tx, lr.RoomID, lr.RenterID, now); err != nil {
			return err
		}
		if err := s.r.SetRoomStatus(ctx, tx, lr.RoomID, model.RoomAvailable); err != nil {
			return err
		}
		if _, err := s.r.FlipPostVisibility(ctx, tx, lr.RoomID, model.PostHidden, model.PostVisible); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) ListForActor(ctx context.Context, actorID int64, actorRole string) ([]ListItem, error) {
	if actorRole == model.RoleAdmin {
		return s.r.ListAll(ctx)
	}
	return s.r.ListForOwner(ctx, actorID)
}

func (s *service) ListMine(ctx context.Context, renterID int64) ([]ListItem, error) {
	return s.r.ListMine(ctx, renterID)
}

func (s *service) PendingCount(ctx context.Context, actorID int64, actorRole string) (int64, error) {
	if actorRole == model.RoleAdmin {
		return s.r.PendingCount(ctx, nil)
	}
	return s.r.PendingCount(ctx, &actorID)
}

func (s *service) Get(ctx context.Context, id int64) (*model.RentalRequest, error) {
	rr, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return rr, nil
}
