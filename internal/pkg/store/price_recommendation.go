package store

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

var priceRecommendationsColumns = []string{
	"id", "unit_id", "date",
	"base_price", "recommended_price", "min_price", "max_price",
	"occupancy_7d", "occupancy_30d",
	"season", "notes", "created_at",
}

// InsertPriceRecommendation appends one row to the recommendation log. There
// is no conflict target: repeated queries for the same (unit, date) each leave
// their own row.
func (s *store) InsertPriceRecommendation(ctx context.Context, rec *domain.PriceRecommendation) (*domain.PriceRecommendation, error) {
	query := builder().Insert(tablePriceRecommendations).
		Columns("unit_id", "date", "base_price", "recommended_price", "min_price", "max_price",
			"occupancy_7d", "occupancy_30d", "season", "notes").
		Values(rec.UnitID, rec.Date, rec.BasePrice, rec.RecommendedPrice, rec.MinPrice, rec.MaxPrice,
			rec.Occupancy7d, rec.Occupancy30d, rec.Season, rec.Notes).
		Suffix("RETURNING " + strings.Join(priceRecommendationsColumns, ", "))

	inserted, err := xpgx.Getx[domain.PriceRecommendation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return inserted, nil
}

type ListPriceRecommendationsOpts struct {
	UnitID   int64
	DateFrom *time.Time
	DateTo   *time.Time
}

func (s *store) ListPriceRecommendations(ctx context.Context, opts ListPriceRecommendationsOpts) ([]*domain.PriceRecommendation, error) {
	query := builder().Select(priceRecommendationsColumns...).
		From(tablePriceRecommendations).
		Where(sq.Eq{"unit_id": opts.UnitID}).
		OrderBy("date", "created_at")

	if opts.DateFrom != nil {
		query = query.Where(sq.GtOrEq{"date": *opts.DateFrom})
	}
	if opts.DateTo != nil {
		query = query.Where(sq.LtOrEq{"date": *opts.DateTo})
	}

	selected, err := xpgx.Selectx[domain.PriceRecommendation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
