package hostelsvc_test

import (
	"context"
	"testing"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	hostelsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/hostel"
)

type repoMock struct {
	createFn    func(ctx context.Context, h *model.Hostel) error
	listFn      func(ctx context.Context, ownerID *int64) ([]model.Hostel, error)
	byIDFn      func(ctx context.Context, id int64) (*model.Hostel, error)
	updateFn    func(ctx context.Context, h *model.Hostel) error
	deleteFn    func(ctx context.Context, id int64) error
	roomCountFn func(ctx context.Context, hostelID int64) (int64, error)
}

func (m *repoMock) Create(ctx context.Context, h *model.Hostel) error { return m.createFn(ctx, h) }
func (m *repoMock) List(ctx context.Context, ownerID *int64) ([]model.Hostel, error) {
	return m.listFn(ctx, ownerID)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Hostel, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, h *model.Hostel) error { return m.updateFn(ctx, h) }
func (m *repoMock) Delete(ctx context.Context, id int64) error        { return m.deleteFn(ctx, id) }
func (m *repoMock) RoomCount(ctx context.Context, hostelID int64) (int64, error) {
	return m.roomCountFn(ctx, hostelID)
}

func TestCreate_Validation(t *testing.T) {
	s := hostelsvc.New(&repoMock{})
	if err := s.Create(context.Background(), 3, &model.Hostel{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCreate_SetsOwner(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, h *model.Hostel) error {
			if h.OwnerID != 3 {
				t.Fatalf("owner not set, got %d", h.OwnerID)
			}
			h.ID = 9
			return nil
		},
	}
	s := hostelsvc.New(m)
	h := &model.Hostel{Name: "Green House"}
	if err := s.Create(context.Background(), 3, h); err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.ID != 9 {
		t.Fatalf("id not returned, got %d", h.ID)
	}
}

func TestDelete_BlockedWhileRoomsExist(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Hostel, error) {
			return &model.Hostel{ID: id, OwnerID: 3}, nil
		},
		roomCountFn: func(ctx context.Context, hostelID int64) (int64, error) { return 2, nil },
	}
	s := hostelsvc.New(m)
	err := s.Delete(context.Background(), 3, model.RoleOwner, 9)
	if hostelsvc.Code(err) != hostelsvc.ErrHasRooms {
		t.Fatalf("got %v; want HAS_ROOMS", err)
	}
}

func TestUpdate_ForbiddenForOtherOwner(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Hostel, error) {
			return &model.Hostel{ID: id, OwnerID: 3}, nil
		},
	}
	s := hostelsvc.New(m)
	err := s.Update(context.Background(), 99, model.RoleOwner, &model.Hostel{ID: 9, Name: "X"})
	if hostelsvc.Code(err) != hostelsvc.ErrForbidden {
		t.Fatalf("got %v; want FORBIDDEN", err)
	}
}
