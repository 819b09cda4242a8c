package hostel

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	hs "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/hostel"
)

type Controller struct {
	Svc hs.Service
	V   *validator.Validate
	Log *slog.Logger
}

type hostelReq struct {
	Name        string  `json:"name" validate:"required"`
	Address     *string `json:"address"`
	Province    *string `json:"province"`
	District    *string `json:"district"`
	Ward        *string `json:"ward"`
	Description *string `json:"description"`
}

func (h *Controller) mapErr(c echo.Context, err error, op string) error {
	switch hs.Code(err) {
	case hs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "hostel not found"})
	case hs.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case hs.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	case hs.ErrHasRooms:
		return c.JSON(http.StatusConflict, echo.Map{"message": "hostel still has rooms"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/hostels
func (h *Controller) Create(c echo.Context) error {
	var req hostelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	hst := &model.Hostel{
		Name:        req.Name,
		Address:     req.Address,
		Province:    req.Province,
		District:    req.District,
		Ward:        req.Ward,
		Description: req.Description,
	}
	if err := h.Svc.Create(c.Request().Context(), jwtx.UserID(c), hst); err != nil {
		return h.mapErr(c, err, "hostel create")
	}
	return c.JSON(http.StatusCreated, hst)
}

// GET /v1/hostels
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c))
	if err != nil {
		return h.mapErr(c, err, "hostel list")
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/hostels/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	hst, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapErr(c, err, "hostel get")
	}
	return c.JSON(http.StatusOK, hst)
}

// PUT /v1/hostels/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req hostelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	hst := &model.Hostel{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		Province:    req.Province,
		District:    req.District,
		Ward:        req.Ward,
		Description: req.Description,
		Status:      "ACTIVE",
	}
	if err := h.Svc.Update(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), hst); err != nil {
		return h.mapErr(c, err, "hostel update")
	}
	return c.JSON(http.StatusOK, hst)
}

// DELETE /v1/hostels/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), id); err != nil {
		return h.mapErr(c, err, "hostel delete")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
