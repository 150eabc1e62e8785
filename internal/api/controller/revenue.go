package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type priceSuggestionRequest struct {
	UnitID int64  `query:"unit_id" validate:"required"`
	Date   string `query:"date" validate:"required,datetime=2006-01-02"`
}

func (c *Controller) GetPriceSuggestion(ctx echo.Context) error {
	var req priceSuggestionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	targetDate, _ := time.Parse("2006-01-02", req.Date)

	suggestion, err := c.revenueService.SuggestPrice(ctx.Request().Context(), req.UnitID, targetDate)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, suggestion)
}

type listRecommendationsRequest struct {
	UnitID   int64  `query:"unit_id" validate:"required"`
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

func (c *Controller) ListPriceRecommendations(ctx echo.Context) error {
	var req listRecommendationsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var dateFrom, dateTo *time.Time
	if req.DateFrom != "" {
		t, _ := time.Parse("2006-01-02", req.DateFrom)
		dateFrom = &t
	}
	if req.DateTo != "" {
		t, _ := time.Parse("2006-01-02", req.DateTo)
		dateTo = &t
	}

	rows, err := c.revenueService.ListRecommendations(ctx.Request().Context(), req.UnitID, dateFrom, dateTo)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}
