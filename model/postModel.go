package model

import "time"

type PostStatus string

const (
	PostVisible PostStatus = "VISIBLE"
	PostHidden  PostStatus = "HIDDEN"
)

type Post struct {
	ID          int64      `json:"id"`
	RoomID      int64      `json:"room_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      PostStatus `json:"status"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"created_at"`
}
