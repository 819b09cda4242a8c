package request

type CreateRequestReq struct {
	RoomID      int64   `json:"room_id" validate:"required,gt=0"`
	RequestType string  `json:"request_type" validate:"required,oneof=RENT RETURN"`
	Note        *string `json:"note"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}
