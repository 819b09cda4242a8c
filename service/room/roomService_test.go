package roomsvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	roomrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/room"
	roomsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/room"
)

type repoMock struct {
	createFn    func(ctx context.Context, rm *model.Room) error
	listFn      func(ctx context.Context, f roomrepo.Filter) ([]model.Room, error)
	byIDFn      func(ctx context.Context, id int64) (*model.Room, error)
	existsFn    func(ctx context.Context, id int64) (bool, error)
	updateFn    func(ctx context.Context, rm *model.Room) error
	deleteFn    func(ctx context.Context, id int64) error
	setStatusFn func(ctx context.Context, id int64, status model.RoomStatus) error
}

func (m *repoMock) Create(ctx context.Context, rm *model.Room) error { return m.createFn(ctx, rm) }
func (m *repoMock) List(ctx context.Context, f roomrepo.Filter) ([]model.Room, error) {
	return m.listFn(ctx, f)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Room, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Exists(ctx context.Context, id int64) (bool, error) { return m.existsFn(ctx, id) }
func (m *repoMock) Update(ctx context.Context, rm *model.Room) error   { return m.updateFn(ctx, rm) }
func (m *repoMock) Delete(ctx context.Context, id int64) error         { return m.deleteFn(ctx, id) }
func (m *repoMock) SetStatus(ctx context.Context, id int64, status model.RoomStatus) error {
	return m.setStatusFn(ctx, id, status)
}

func TestCreate_Validation(t *testing.T) {
	s := roomsvc.New(&repoMock{})
	if err := s.Create(context.Background(), 3, &model.Room{Price: 100}); err == nil {
		t.Fatal("expected error for empty title")
	}
	if err := s.Create(context.Background(), 3, &model.Room{Title: "A1", Price: -1}); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestCreate_SetsOwnerAndDefaultStatus(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, rm *model.Room) error {
			if rm.OwnerID != 3 {
				t.Fatalf("owner not set, got %d", rm.OwnerID)
			}
			rm.ID = 5
			return nil
		},
	}
	s := roomsvc.New(m)
	rm := &model.Room{Title: "A1", Price: 350, Deposit: 700}
	if err := s.Create(context.Background(), 3, rm); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rm.Status != model.RoomAvailable {
		t.Fatalf("status not defaulted, got %q", rm.Status)
	}
}

func TestGet_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Room, error) { return nil, sql.ErrNoRows },
	}
	s := roomsvc.New(m)
	_, err := s.Get(context.Background(), 9)
	if roomsvc.Code(err) != roomsvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestUpdate_ForbiddenForOtherOwner(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Room, error) {
			return &model.Room{ID: id, OwnerID: 3}, nil
		},
	}
	s := roomsvc.New(m)
	err := s.Update(context.Background(), 99, model.RoleOwner, &model.Room{ID: 5, Title: "A1"})
	if roomsvc.Code(err) != roomsvc.ErrForbidden {
		t.Fatalf("got %v; want FORBIDDEN", err)
	}
}

func TestSetStatus_AdminBypassesOwnership(t *testing.T) {
	var set model.RoomStatus
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Room, error) {
			return &model.Room{ID: id, OwnerID: 3}, nil
		},
		setStatusFn: func(ctx context.Context, id int64, status model.RoomStatus) error {
			set = status
			return nil
		},
	}
	s := roomsvc.New(m)
	if err := s.SetStatus(context.Background(), 99, model.RoleAdmin, 5, model.RoomRented); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if set != model.RoomRented {
		t.Fatalf("status not written, got %q", set)
	}
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	s := roomsvc.New(&repoMock{})
	err := s.SetStatus(context.Background(), 3, model.RoleOwner, 5, model.RoomStatus("archived"))
	if roomsvc.Code(err) != roomsvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT", err)
	}
}
