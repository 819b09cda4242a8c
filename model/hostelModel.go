package model

type Hostel struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"owner_id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Province    *string `json:"province,omitempty"`
	District    *string `json:"district,omitempty"`
	Ward        *string `json:"ward,omitempty"`
	Description *string `json:"description,omitempty"`
	RoomCount   int64   `json:"room_count"`
	Status      string  `json:"status"`
}
