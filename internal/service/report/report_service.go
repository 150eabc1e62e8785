// Package report composes finance totals and occupancy metrics into
// per-property dashboard payloads. It owns no metric math of its own.
package report

import (
	"context"
	"fmt"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/domain/dto"
	"github.com/paskalex1/sochirent-crm/internal/pkg/period"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store"
	"github.com/paskalex1/sochirent-crm/internal/service/metrics"
	"github.com/paskalex1/sochirent-crm/internal/service/occupancy"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store   store.Store
	metrics *metrics.Service
}

func NewService(store store.Store, metrics *metrics.Service) *Service {
	return &Service{store: store, metrics: metrics}
}

// OwnerReport aggregates every property of the owner for the month.
// Properties are independent and are processed concurrently.
func (s *Service) OwnerReport(ctx context.Context, ownerID int64, year, month int) (*dto.OwnerReport, error) {
	if _, _, err := period.Bounds(year, month); err != nil {
		return nil, err
	}

	props, err := s.store.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list properties for owner %d: %w", ownerID, err)
	}

	reports := make([]dto.PropertyReport, len(props))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, prop := range props {
		i, prop := i, prop
		eg.Go(func() error {
			r, err := s.propertyReport(egCtx, prop, year, month)
			if err != nil {
				return err
			}
			reports[i] = *r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &dto.OwnerReport{
		OwnerID:    ownerID,
		Period:     dto.Period{Year: year, Month: month},
		Properties: reports,
	}, nil
}

func (s *Service) propertyReport(ctx context.Context, prop *domain.Property, year, month int) (*dto.PropertyReport, error) {
	periodStart, periodEnd, err := period.Bounds(year, month)
	if err != nil {
		return nil, err
	}

	totals, err := s.store.FinanceTotalsByCurrency(ctx, prop.ID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("finance totals for property %d: %w", prop.ID, err)
	}

	finance := make([]dto.CurrencyTotals, 0, len(totals))
	for _, t := range totals {
		finance = append(finance, dto.CurrencyTotals{
			Currency:     t.Currency,
			IncomeTotal:  t.IncomeTotal.InexactFloat64(),
			ExpenseTotal: t.ExpenseTotal.InexactFloat64(),
			NetTotal:     t.NetTotal().InexactFloat64(),
		})
	}

	out := &dto.PropertyReport{
		PropertyID:   prop.ID,
		PropertyName: prop.Name,
		Finance:      finance,
	}

	// Hotels get the full metrics summary, everything else the simplified
	// nights-based ratio.
	if prop.Type == domain.PropertyTypeHotel {
		stats, err := s.metrics.Stats(ctx, prop, year, month)
		if err != nil {
			return nil, err
		}
		out.HotelSummary = &stats.Summary
	} else {
		occ, err := s.simpleOccupancy(ctx, prop.ID, year, month)
		if err != nil {
			return nil, err
		}
		out.Occupancy = occ
	}

	return out, nil
}

// PropertyOccupancy is the non-hotel per-property occupancy summary.
func (s *Service) PropertyOccupancy(ctx context.Context, propertyID int64, year, month int) (*dto.PropertyOccupancy, error) {
	if _, err := s.store.GetProperty(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("get property %d: %w", propertyID, err)
	}

	return s.simpleOccupancy(ctx, propertyID, year, month)
}

// simpleOccupancy computes occupied_nights / (active_units * days_in_period)
// with the same overlap policy as the windowed aggregator. No active units
// means the ratio is undefined, not zero.
func (s *Service) simpleOccupancy(ctx context.Context, propertyID int64, year, month int) (*dto.PropertyOccupancy, error) {
	periodStart, periodEnd, err := period.Bounds(year, month)
	if err != nil {
		return nil, err
	}
	endExcl := periodEnd.AddDate(0, 0, 1)
	daysInPeriod := period.Days(periodStart, periodEnd)

	out := &dto.PropertyOccupancy{
		PropertyID:   propertyID,
		Period:       dto.Period{Year: year, Month: month},
		DaysInPeriod: daysInPeriod,
	}

	unitsCount, err := s.store.CountActiveUnits(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("count active units: %w", err)
	}
	out.UnitsCount = unitsCount
	if unitsCount == 0 {
		return out, nil
	}

	bookings, err := s.store.ListOverlappingBookings(ctx, propertyID, periodStart, endExcl)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out.OccupiedNights = occupancy.OccupiedNights(bookings, periodStart, endExcl)
	out.OccupancyAvg = occupancy.WindowRatio(bookings, unitsCount, periodStart, endExcl)

	return out, nil
}
