package rentalinfo

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	ris "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/rentalinfo"
)

type Controller struct {
	Svc ris.Service
	Log *slog.Logger
}

// GET /v1/rental-infos/current?room_id=
func (h *Controller) Current(c echo.Context) error {
	roomID, err := strconv.ParseInt(c.QueryParam("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room_id"})
	}

	cur, err := h.Svc.CurrentByRoom(c.Request().Context(), jwtx.UserID(c), jwtx.Role(c), roomID)
	if err != nil {
		switch ris.Code(err) {
		case ris.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room is unoccupied"})
		case ris.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case ris.ErrBadRoom:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room_id"})
		default:
			h.Log.Error("current renter", "err", err, "room_id", roomID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, cur)
}

// GET /v1/rental-infos/my
func (h *Controller) MyHistory(c echo.Context) error {
	rows, err := h.Svc.MyHistory(c.Request().Context(), jwtx.UserID(c))
	if err != nil {
		h.Log.Error("rental history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/rental-infos?room_id=
func (h *Controller) List(c echo.Context) error {
	var roomID *int64
	if v := c.QueryParam("room_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room_id"})
		}
		roomID = &id
	}

	rows, err := h.Svc.List(c.Request().Context(), roomID)
	if err != nil {
		h.Log.Error("rental info list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
