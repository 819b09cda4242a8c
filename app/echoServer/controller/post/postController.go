package post

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	ps "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/post"
)

type Controller struct {
	Svc ps.Service
	V   *validator.Validate
	Log *slog.Logger
}

type postReq struct {
	RoomID      int64    `json:"room_id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=VISIBLE HIDDEN"`
}

func (h *Controller) mapErr(c echo.Context, err error, op string) error {
	switch ps.Code(err) {
	case ps.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "post not found"})
	case ps.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case ps.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/posts
func (h *Controller) Create(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	p := &model.Post{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	}
	if err := h.Svc.Create(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), p); err != nil {
		return h.mapErr(c, err, "post create")
	}
	return c.JSON(http.StatusCreated, p)
}

// GET /v1/posts (public, visible only)
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.ListPublic(c.Request().Context())
	if err != nil {
		return h.mapErr(c, err, "post list")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/posts/mine
func (h *Controller) ListMine(c echo.Context) error {
	rows, err := h.Svc.ListMine(c.Request().Context(), jwtx.UserID(c))
	if err != nil {
		return h.mapErr(c, err, "post mine")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/posts/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	p, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, err, "post get")
	}
	return c.JSON(http.StatusOK, p)
}

// PUT /v1/posts/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	p := &model.Post{
		ID:          id,
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	}
	if err := h.Svc.Update(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), p); err != nil {
		return h.mapErr(c, err, "post update")
	}
	return c.JSON(http.StatusOK, p)
}

// DELETE /v1/posts/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), id); err != nil {
		return h.mapErr(c, err, "post delete")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// PATCH /v1/posts/:id/status
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

	if err := h.Svc.SetStatus(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), id, model.PostStatus(req.Status)); err != nil {
		return h.mapErr(c, err, "post set status")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}
