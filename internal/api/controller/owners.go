package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetOwnerReport(ctx echo.Context) error {
	ownerID, err := pathID(ctx)
	if err != nil {
		return err
	}
	year, month := periodParams(ctx)

	report, err := c.reportService.OwnerReport(ctx.Request().Context(), ownerID, year, month)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}
