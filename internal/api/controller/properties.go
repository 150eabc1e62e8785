package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
)

// periodParams reads the year/month query parameters, defaulting to the
// current month. Non-numeric values fall back to the default; out-of-range
// numeric values are rejected later by period.Bounds.
func periodParams(ctx echo.Context) (int, int) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if v := ctx.QueryParam("year"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			year = parsed
		}
	}
	if v := ctx.QueryParam("month"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			month = parsed
		}
	}

	return year, month
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.ErrBadRequest
	}
	return id, nil
}

func (c *Controller) GetHotelStats(ctx echo.Context) error {
	propertyID, err := pathID(ctx)
	if err != nil {
		return err
	}
	year, month := periodParams(ctx)

	stats, err := c.metricsService.HotelStats(ctx.Request().Context(), propertyID, year, month)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *Controller) GetPropertyOccupancy(ctx echo.Context) error {
	propertyID, err := pathID(ctx)
	if err != nil {
		return err
	}
	year, month := periodParams(ctx)

	occ, err := c.reportService.PropertyOccupancy(ctx.Request().Context(), propertyID, year, month)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, occ)
}
