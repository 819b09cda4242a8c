package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	rvs "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/review"
)

type Controller struct {
	Svc rvs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type reviewReq struct {
	RoomID  int64   `json:"room_id" validate:"required,gt=0"`
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

func (h *Controller) mapErr(c echo.Context, err error, op string) error {
	switch rvs.Code(err) {
	case rvs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "review not found"})
	case rvs.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case rvs.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/reviews
func (h *Controller) Create(c echo.Context) error {
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rv := &model.Review{RoomID: req.RoomID, Rating: req.Rating, Comment: req.Comment}
	if err := h.Svc.Create(c.Request().Context(), jwtx.UserID(c), rv); err != nil {
		return h.mapErr(c, err, "review create")
	}
	return c.JSON(http.StatusCreated, rv)
}

// GET /v1/reviews?room_id= (public)
func (h *Controller) List(c echo.Context) error {
	roomID, err := strconv.ParseInt(c.QueryParam("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room_id"})
	}
	rows, err := h.Svc.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return h.mapErr(c, err, "review list")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PUT /v1/reviews/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rv := &model.Review{ID: id, RoomID: req.RoomID, Rating: req.Rating, Comment: req.Comment}
	if err := h.Svc.Update(c.Request().Context(), jwtx.UserID(c), rv); err != nil {
		return h.mapErr(c, err, "review update")
	}
	return c.JSON(http.StatusOK, rv)
}

// DELETE /v1/reviews/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), jwtx.UserID(c), id); err != nil {
		return h.mapErr(c, err, "review delete")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
