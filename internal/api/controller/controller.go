package controller

import (
	"github.com/paskalex1/sochirent-crm/internal/service/metrics"
	"github.com/paskalex1/sochirent-crm/internal/service/report"
	"github.com/paskalex1/sochirent-crm/internal/service/revenue"
)

type Controller struct {
	revenueService *revenue.Service
	metricsService *metrics.Service
	reportService  *report.Service
}

func NewController(revenueService *revenue.Service, metricsService *metrics.Service, reportService *report.Service) *Controller {
	return &Controller{
		revenueService: revenueService,
		metricsService: metricsService,
		reportService:  reportService,
	}
}
