// Package revenue derives bounded nightly price recommendations from the
// rate-plan baseline, trailing occupancy and season, and keeps an append-only
// log of every suggestion served.
package revenue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/domain/dto"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/logger"
	"github.com/paskalex1/sochirent-crm/internal/pkg/period"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store"
	"github.com/paskalex1/sochirent-crm/internal/service/occupancy"
	"github.com/shopspring/decimal"
)

var (
	coeffHighOccupancy = decimal.RequireFromString("1.15")
	coeffGoodOccupancy = decimal.RequireFromString("1.05")
	coeffLowOccupancy  = decimal.RequireFromString("0.90")
	coeffHighSeason    = decimal.RequireFromString("1.10")
	minPriceFactor     = decimal.RequireFromString("0.70")
	maxPriceFactor     = decimal.RequireFromString("1.50")
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// SuggestPrice computes, persists and returns one price recommendation for
// the unit on the target date. Missing data never fails the request: no
// active rate plan means a zero base price and zero bounds, zero active units
// means undefined occupancy. Only an unknown unit or a store failure errors.
func (s *Service) SuggestPrice(ctx context.Context, unitID int64, targetDate time.Time) (*dto.PriceSuggestion, error) {
	targetDate = period.Day(targetDate)

	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("get unit %d: %w", unitID, err)
	}

	basePrice := decimal.Zero
	plan, err := s.store.GetActiveRatePlan(ctx, unit.PropertyID)
	switch {
	case err == nil:
		basePrice = plan.BasePrice
	case errors.Is(err, constants.ErrDBNotFound):
		logger.Infof(ctx, "no active rate plan for property %d, base price 0", unit.PropertyID)
	default:
		return nil, fmt.Errorf("get rate plan: %w", err)
	}

	occupancy7d, err := s.trailingOccupancy(ctx, unit.PropertyID, targetDate, 7)
	if err != nil {
		return nil, err
	}
	occupancy30d, err := s.trailingOccupancy(ctx, unit.PropertyID, targetDate, 30)
	if err != nil {
		return nil, err
	}

	season := period.Season(targetDate)

	coeff := decimal.NewFromInt(1)
	if basePrice.IsPositive() && occupancy30d != nil {
		switch {
		case *occupancy30d >= 0.8:
			coeff = coeff.Mul(coeffHighOccupancy)
		case *occupancy30d >= 0.6:
			coeff = coeff.Mul(coeffGoodOccupancy)
		case *occupancy30d <= 0.3:
			coeff = coeff.Mul(coeffLowOccupancy)
		}
	}
	if basePrice.IsPositive() && season == period.SeasonHigh {
		coeff = coeff.Mul(coeffHighSeason)
	}

	minPrice := basePrice
	maxPrice := basePrice
	rawRecommended := basePrice
	recommended := basePrice
	if basePrice.IsPositive() {
		minPrice = basePrice.Mul(minPriceFactor).Round(2)
		maxPrice = basePrice.Mul(maxPriceFactor).Round(2)
		rawRecommended = basePrice.Mul(coeff).Round(2)
		recommended = clamp(rawRecommended, minPrice, maxPrice)
	}

	notes := buildNotes(basePrice, occupancy30d, season, minPrice, maxPrice, rawRecommended, recommended)

	inserted, err := s.store.InsertPriceRecommendation(ctx, &domain.PriceRecommendation{
		UnitID:           unit.ID,
		Date:             targetDate,
		BasePrice:        basePrice,
		RecommendedPrice: recommended,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		Occupancy7d:      occupancy7d,
		Occupancy30d:     occupancy30d,
		Season:           season,
		Notes:            notes,
	})
	if err != nil {
		return nil, fmt.Errorf("insert price recommendation: %w", err)
	}

	return &dto.PriceSuggestion{
		UnitID:           inserted.UnitID,
		Date:             inserted.Date.Format("2006-01-02"),
		BasePrice:        inserted.BasePrice.InexactFloat64(),
		RecommendedPrice: inserted.RecommendedPrice.InexactFloat64(),
		MinPrice:         inserted.MinPrice.InexactFloat64(),
		MaxPrice:         inserted.MaxPrice.InexactFloat64(),
		Occupancy7d:      inserted.Occupancy7d,
		Occupancy30d:     inserted.Occupancy30d,
		Season:           inserted.Season,
		Notes:            inserted.Notes,
	}, nil
}

// trailingOccupancy is the property-wide occupancy ratio over the half-open
// window [targetDate - days, targetDate). Nil when the property has no active
// units.
func (s *Service) trailingOccupancy(ctx context.Context, propertyID int64, targetDate time.Time, days int) (*float64, error) {
	unitsCount, err := s.store.CountActiveUnits(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("count active units: %w", err)
	}
	if unitsCount == 0 {
		return nil, nil
	}

	start := targetDate.AddDate(0, 0, -days)
	bookings, err := s.store.ListOverlappingBookings(ctx, propertyID, start, targetDate)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return occupancy.WindowRatio(bookings, unitsCount, start, targetDate), nil
}

func (s *Service) ListRecommendations(ctx context.Context, unitID int64, dateFrom, dateTo *time.Time) ([]dto.PriceRecommendationRow, error) {
	if _, err := s.store.GetUnit(ctx, unitID); err != nil {
		return nil, fmt.Errorf("get unit %d: %w", unitID, err)
	}

	recs, err := s.store.ListPriceRecommendations(ctx, store.ListPriceRecommendationsOpts{
		UnitID:   unitID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list price recommendations: %w", err)
	}

	rows := make([]dto.PriceRecommendationRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, dto.PriceRecommendationRow{
			ID:               rec.ID,
			UnitID:           rec.UnitID,
			Date:             rec.Date.Format("2006-01-02"),
			BasePrice:        rec.BasePrice.InexactFloat64(),
			RecommendedPrice: rec.RecommendedPrice.InexactFloat64(),
			MinPrice:         rec.MinPrice.InexactFloat64(),
			MaxPrice:         rec.MaxPrice.InexactFloat64(),
			Occupancy7d:      rec.Occupancy7d,
			Occupancy30d:     rec.Occupancy30d,
			Season:           rec.Season,
			Notes:            rec.Notes,
			CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return rows, nil
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// buildNotes assembles the explanation in a fixed order: base price, 30-day
// occupancy with its adjustment, season, clamp notice, final price. The
// wording is part of the API contract.
func buildNotes(basePrice decimal.Decimal, occupancy30d *float64, season string, minPrice, maxPrice, rawRecommended, recommended decimal.Decimal) string {
	lines := []string{fmt.Sprintf("Base price: %s.", basePrice.StringFixed(2))}

	if occupancy30d != nil && basePrice.IsPositive() {
		percent := fmt.Sprintf("%.0f%%", *occupancy30d*100)
		switch {
		case *occupancy30d >= 0.8:
			lines = append(lines, fmt.Sprintf("Occupancy over 30 days: %s. Surcharge +15%% applied.", percent))
		case *occupancy30d >= 0.6:
			lines = append(lines, fmt.Sprintf("Occupancy over 30 days: %s. Surcharge +5%% applied.", percent))
		case *occupancy30d <= 0.3:
			lines = append(lines, fmt.Sprintf("Occupancy over 30 days: %s. Discount -10%% applied.", percent))
		default:
			lines = append(lines, fmt.Sprintf("Occupancy over 30 days: %s. No adjustment applied.", percent))
		}
	}

	if basePrice.IsPositive() && season == period.SeasonHigh {
		lines = append(lines, "Season: high. Extra surcharge +10% applied.")
	} else {
		lines = append(lines, fmt.Sprintf("Season: %s.", season))
	}

	if basePrice.IsPositive() && !recommended.Equal(rawRecommended) {
		lines = append(lines, fmt.Sprintf("Price limited to range %s-%s.", minPrice.StringFixed(2), maxPrice.StringFixed(2)))
	}

	lines = append(lines, fmt.Sprintf("Final recommended price: %s.", recommended.StringFixed(2)))

	return strings.Join(lines, " ")
}
