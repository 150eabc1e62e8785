package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/paskalex1/sochirent-crm/internal/api/controller"
	"github.com/paskalex1/sochirent-crm/internal/pkg/auth"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/logger"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store"
	"github.com/paskalex1/sochirent-crm/internal/service/metrics"
	"github.com/paskalex1/sochirent-crm/internal/service/report"
	"github.com/paskalex1/sochirent-crm/internal/service/revenue"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
	policy auth.Policy

	revenueService *revenue.Service
	metricsService *metrics.Service
	reportService  *report.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, policy auth.Policy) (*APIService, error) {
	svc := &APIService{router: echo.New(), policy: policy}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.revenueService = revenue.NewService(store)
	svc.metricsService = metrics.NewService(store)
	svc.reportService = report.NewService(store, svc.metricsService)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.revenueService, svc.metricsService, svc.reportService)

	rev := api.Group("/revenue", svc.AuthMiddleware, svc.RequireZone(auth.ZoneRevenue))
	rev.GET("/price-suggestion", cntrl.GetPriceSuggestion)
	rev.GET("/price-recommendations", cntrl.ListPriceRecommendations)

	properties := api.Group("/properties", svc.AuthMiddleware, svc.RequireZone(auth.ZoneProperties))
	properties.GET("/:id/hotel-stats", cntrl.GetHotelStats)
	properties.GET("/:id/occupancy", cntrl.GetPropertyOccupancy)

	owners := api.Group("/owners", svc.AuthMiddleware, svc.RequireZone(auth.ZoneOwners))
	owners.GET("/:id/report", cntrl.GetOwnerReport)

	return svc, nil
}
