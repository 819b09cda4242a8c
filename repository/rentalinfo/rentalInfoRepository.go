package rentalinforepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

// CurrentRenter is the active tenancy of a room joined with the renter's
// contact details, shown to the room's owner.
type CurrentRenter struct {
	RentalInfoID   int64                  `json:"rental_info_id"`
	RoomID         int64                  `json:"room_id"`
	RoomOwnerID    int64                  `json:"-"`
	RenterID       int64                  `json:"renter_id"`
	RenterFullName string                 `json:"renter_full_name"`
	RenterPhone    *string                `json:"renter_phone,omitempty"`
	RenterEmail    string                 `json:"renter_email"`
	StartDate      time.Time              `json:"start_date"`
	MonthlyPrice   float64                `json:"monthly_price"`
	Deposit        float64                `json:"deposit"`
	Status         model.RentalInfoStatus `json:"status"`
}

// HistoryRow is one tenancy in a renter's history with room context.
type HistoryRow struct {
	ID           int64                  `json:"id"`
	RoomID       int64                  `json:"room_id"`
	RoomTitle    string                 `json:"room_title"`
	HostelName   *string                `json:"hostel_name,omitempty"`
	RequestID    int64                  `json:"request_id"`
	StartDate    time.Time              `json:"start_date"`
	EndDate      *time.Time             `json:"end_date,omitempty"`
	MonthlyPrice float64                `json:"monthly_price"`
	Deposit      float64                `json:"deposit"`
	Status       model.RentalInfoStatus `json:"status"`
}

type Repo interface {
	CurrentByRoom(ctx context.Context, roomID int64) (*CurrentRenter, error)
	ListMine(ctx context.Context, renterID int64) ([]HistoryRow, error)
	List(ctx context.Context, roomID *int64) ([]model.RentalInfo, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) CurrentByRoom(ctx context.Context, roomID int64) (*CurrentRenter, error) {
	const q = `
		SELECT ri.id, ri.room_id, rm.owner_id, ri.renter_id,
			u.full_name, u.phone, u.email,
			ri.start_date, ri.monthly_price, ri.deposit, ri.status
		FROM rental_infos ri
		JOIN rooms rm ON rm.id = ri.room_id
		JOIN users u ON u.id = ri.renter_id
		WHERE ri.room_id = $1
		AND ri.end_date IS NULL`
	c := &CurrentRenter{}
	err := r.db.QueryRowContext(ctx, q, roomID).Scan(&c.RentalInfoID, &c.RoomID,
		&c.RoomOwnerID, &c.RenterID, &c.RenterFullName, &c.RenterPhone, &c.RenterEmail,
		&c.StartDate, &c.MonthlyPrice, &c.Deposit, &c.Status)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) ListMine(ctx context.Context, renterID int64) ([]HistoryRow, error) {
	const q = `
		SELECT ri.id, ri.room_id, rm.title, h.name, ri.request_id,
			ri.start_date, ri.end_date, ri.monthly_price, ri.deposit, ri.status
		FROM rental_infos ri
		JOIN rooms rm ON rm.id = ri.room_id
		LEFT JOIN hostels h ON h.id = rm.hostel_id
		WHERE ri.renter_id = $1
		ORDER BY ri.start_date DESC, ri.id DESC`
	rows, err := r.db.QueryContext(ctx, q, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.ID, &h.RoomID, &h.RoomTitle, &h.HostelName, &h.RequestID,
			&h.StartDate, &h.EndDate, &h.MonthlyPrice, &h.Deposit, &h.Status); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) List(ctx context.Context, roomID *int64) ([]model.RentalInfo, error) {
	q := `
		SELECT id, room_id, renter_id, request_id, start_date, end_date,
			monthly_price, deposit, status
		FROM rental_infos`
	args := []any{}
	if roomID != nil {
		q += ` WHERE room_id = $1`
		args = append(args, *roomID)
	}
	q += ` ORDER BY start_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentalInfo
	for rows.Next() {
		var ri model.RentalInfo
		if err := rows.Scan(&ri.ID, &ri.RoomID, &ri.RenterID, &ri.RequestID,
			&ri.StartDate, &ri.EndDate, &ri.MonthlyPrice, &ri.Deposit, &ri.Status); err != nil {
			return nil, err
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}
