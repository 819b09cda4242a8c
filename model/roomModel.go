package model

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomRented    RoomStatus = "rented"
)

type Room struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"owner_id"`
	HostelID  *int64     `json:"hostel_id,omitempty"`
	Title     string     `json:"title"`
	Area      *float64   `json:"area,omitempty"`
	Price     float64    `json:"price"`
	Deposit   float64    `json:"deposit"`
	Utilities *string    `json:"utilities,omitempty"`
	Status    RoomStatus `json:"status"`
}
