// Package metrics builds the day-by-day occupancy/ADR/RevPAR time series for
// a property's unit inventory over one month.
package metrics

import (
	"context"
	"fmt"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/domain/dto"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/period"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store"
	"github.com/paskalex1/sochirent-crm/internal/service/occupancy"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// HotelStats loads the property and computes its monthly stats. Only
// hotel-type properties are served through this path.
func (s *Service) HotelStats(ctx context.Context, propertyID int64, year, month int) (*dto.HotelStats, error) {
	prop, err := s.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("get property %d: %w", propertyID, err)
	}

	if prop.Type != domain.PropertyTypeHotel {
		return nil, constants.ErrNotHotel
	}

	return s.Stats(ctx, prop, year, month)
}

// Stats computes the full month time series plus summary for an already
// loaded property. All monetary math stays in decimal; float64 appears only
// in the payload. A zero denominator yields nil for the affected metric,
// never an error.
func (s *Service) Stats(ctx context.Context, prop *domain.Property, year, month int) (*dto.HotelStats, error) {
	periodStart, periodEnd, err := period.Bounds(year, month)
	if err != nil {
		return nil, err
	}

	roomsTotal, err := s.store.CountActiveUnits(ctx, prop.ID)
	if err != nil {
		return nil, fmt.Errorf("count active units: %w", err)
	}

	bookings, err := s.store.ListOverlappingBookings(ctx, prop.ID, periodStart, periodEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	loads := occupancy.DailyLoads(bookings, periodStart, periodEnd)

	daysInPeriod := period.Days(periodStart, periodEnd)
	days := make([]dto.DayStats, 0, daysInPeriod)

	totalRevenue := decimal.Zero
	totalOccupied := 0
	occupancySum := 0.0
	occupancyCount := 0

	for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
		occupied := 0
		revenue := decimal.Zero
		if load, ok := loads[day]; ok {
			occupied = len(load.Units)
			revenue = load.Revenue
		}

		stats := dto.DayStats{
			Date:          day.Format("2006-01-02"),
			RoomsTotal:    roomsTotal,
			RoomsOccupied: occupied,
			RoomsRevenue:  revenue.InexactFloat64(),
		}

		if roomsTotal > 0 {
			ratio := float64(occupied) / float64(roomsTotal)
			stats.Occupancy = &ratio
			occupancySum += ratio
			occupancyCount++

			revpar := revenue.Div(decimal.NewFromInt(int64(roomsTotal))).InexactFloat64()
			stats.RevPAR = &revpar
		}
		if occupied > 0 {
			adr := revenue.Div(decimal.NewFromInt(int64(occupied))).InexactFloat64()
			stats.ADR = &adr
		}

		totalRevenue = totalRevenue.Add(revenue)
		totalOccupied += occupied
		days = append(days, stats)
	}

	summary := dto.HotelSummary{
		RoomsTotal:        roomsTotal,
		RoomsRevenueTotal: totalRevenue.InexactFloat64(),
	}
	if occupancyCount > 0 {
		avg := occupancySum / float64(occupancyCount)
		summary.OccupancyAvg = &avg
	}
	if totalOccupied > 0 {
		adrAvg := totalRevenue.Div(decimal.NewFromInt(int64(totalOccupied))).InexactFloat64()
		summary.ADRAvg = &adrAvg
	}
	if roomsTotal > 0 && daysInPeriod > 0 {
		revparAvg := totalRevenue.Div(decimal.NewFromInt(int64(roomsTotal * daysInPeriod))).InexactFloat64()
		summary.RevPARAvg = &revparAvg
	}

	return &dto.HotelStats{
		PropertyID: prop.ID,
		Period:     dto.Period{Year: year, Month: month},
		Summary:    summary,
		Days:       days,
	}, nil
}
