package room

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	rms "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/room"
)

type Controller struct {
	Svc rms.Service
	V   *validator.Validate
	Log *slog.Logger
}

type roomReq struct {
	HostelID  *int64   `json:"hostel_id"`
	Title     string   `json:"title" validate:"required"`
	Area      *float64 `json:"area"`
	Price     float64  `json:"price" validate:"gte=0"`
	Deposit   float64  `json:"deposit" validate:"gte=0"`
	Utilities *string  `json:"utilities"`
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=available rented"`
}

func (h *Controller) mapErr(c echo.Context, err error, op string) error {
	switch rms.Code(err) {
	case rms.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	case rms.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case rms.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/rooms
func (h *Controller) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rm := &model.Room{
		HostelID:  req.HostelID,
		Title:     req.Title,
		Area:      req.Area,
		Price:     req.Price,
		Deposit:   req.Deposit,
		Utilities: req.Utilities,
	}
	if err := h.Svc.Create(c.Request().Context(), jwtx.UserID(c), rm); err != nil {
		return h.mapErr(c, err, "room create")
	}
	return c.JSON(http.StatusCreated, rm)
}

// GET /v1/rooms?hostel_id=&mine=
func (h *Controller) List(c echo.Context) error {
	var f rms.Filter
	if c.QueryParam("mine") == "true" {
		uid := jwtx.UserID(c)
		f.OwnerID = &uid
	} else if v := c.QueryParam("hostel_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid hostel_id"})
		}
		f.HostelID = &id
	}

	rows, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return h.mapErr(c, err, "room list")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rooms/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rm, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, err, "room get")
	}
	return c.JSON(http.StatusOK, rm)
}

// PUT /v1/rooms/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rm := &model.Room{
		ID:        id,
		HostelID:  req.HostelID,
		Title:     req.Title,
		Area:      req.Area,
		Price:     req.Price,
		Deposit:   req.Deposit,
		Utilities: req.Utilities,
	}
	if err := h.Svc.Update(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), rm); err != nil {
		return h.mapErr(c, err, "room update")
	}
	return c.JSON(http.StatusOK, rm)
}

// DELETE /v1/rooms/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), id); err != nil {
		return h.mapErr(c, err, "room delete")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// PATCH /v1/rooms/:id/status
func (h *Controller) SetStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.SetStatus(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), id, model.RoomStatus(req.Status)); err != nil {
		return h.mapErr(c, err, "room set status")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}
