package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	us "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/user"
)

type Controller struct {
	Svc us.Service
	V   *validator.Validate
	Log *slog.Logger
}

type profileReq struct {
	FullName  string  `json:"full_name" validate:"required"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	Address   *string `json:"address"`
}

func (h *Controller) mapErr(c echo.Context, err error, op string) error {
	switch us.Code(err) {
	case us.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	case us.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// GET /v1/users (admin)
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.mapErr(c, err, "user list")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/users/:id (admin)
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, err, "user get")
	}
	return c.JSON(http.StatusOK, u)
}

// PATCH /v1/users/:id/status (admin)
func (h *Controller) ToggleStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	next, err := h.Svc.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, err, "user toggle status")
	}
	return c.JSON(http.StatusOK, echo.Map{"status": next})
}

// GET /v1/profile
func (h *Controller) Profile(c echo.Context) error {
	u, err := h.Svc.Get(c.Request().Context(), jwtx.UserID(c))
	if err != nil {
		return h.mapErr(c, err, "profile get")
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /v1/profile
func (h *Controller) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	u := &model.User{
		ID:        jwtx.UserID(c),
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Address:   req.Address,
	}
	if err := h.Svc.UpdateProfile(c.Request().Context(), u); err != nil {
		return h.mapErr(c, err, "profile update")
	}
	return c.JSON(http.StatusOK, u)
}
