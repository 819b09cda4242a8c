package model

import "time"

type Review struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	RenterID  int64     `json:"renter_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
