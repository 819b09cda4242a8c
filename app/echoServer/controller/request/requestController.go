package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
	rs "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/request"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rental-requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	rr, err := h.Svc.Create(c.Request().Context(), jwtx.UserID(c), req.RoomID,
		model.RequestType(req.RequestType), req.Note)
	if err != nil {
		h.Log.Error("rental request create", "err", err)
		switch rs.Code(err) {
		case rs.ErrRoomNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rr)
}

// PATCH /v1/rental-requests/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	err = h.Svc.UpdateStatus(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c),
		id, model.RequestStatus(req.Status))
	if err != nil {
		h.Log.Error("rental request transition", "err", err, "id", id)
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		case rs.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case rs.ErrAlreadyDecided, rs.ErrDuplicateInfo:
			return c.JSON(http.StatusConflict, echo.Map{"message": "request already decided"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

// GET /v1/rental-requests
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.ListForActor(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c))
	if err != nil {
		h.Log.Error("rental request list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rental-requests/my
func (h *Controller) ListMine(c echo.Context) error {
	rows, err := h.Svc.ListMine(c.Request().Context(), jwtx.UserID(c))
	if err != nil {
		h.Log.Error("rental request my list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rental-requests/pending-count
func (h *Controller) PendingCount(c echo.Context) error {
	n, err := h.Svc.PendingCount(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c))
	if err != nil {
		h.Log.Error("pending count", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": n})
}

// GET /v1/rental-requests/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rr, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
		}
		h.Log.Error("rental request get", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rr)
}
