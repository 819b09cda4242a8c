package model

import "time"

type RequestType string

const (
	RequestRent   RequestType = "RENT"
	RequestReturn RequestType = "RETURN"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

type RentalRequest struct {
	ID          int64         `json:"id"`
	RoomID      int64         `json:"room_id"`
	RenterID    int64         `json:"renter_id"`
	RequestType RequestType   `json:"request_type"`
	Status      RequestStatus `json:"status"`
	SentAt      time.Time     `json:"sent_at"`
	Note        *string       `json:"note,omitempty"`
}

type RentalInfoStatus string

const (
	RentalActive    RentalInfoStatus = "ACTIVE"
	RentalEnded     RentalInfoStatus = "ENDED"
	RentalCancelled RentalInfoStatus = "CANCELLED"
)

// RentalInfo records one tenancy. EndDate == nil means the tenancy is
// still active; at most one active row may exist per room.
type RentalInfo struct {
	ID           int64            `json:"id"`
	RoomID       int64            `json:"room_id"`
	RenterID     int64            `json:"renter_id"`
	RequestID    int64            `json:"request_id"`
	StartDate    time.Time        `json:"start_date"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	MonthlyPrice float64          `json:"monthly_price"`
	Deposit      float64          `json:"deposit"`
	Status       RentalInfoStatus `json:"status"`
}
