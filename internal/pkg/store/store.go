package store

import (
	"context"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error)
	GetUnit(ctx context.Context, id int64) (*domain.Unit, error)
	CountActiveUnits(ctx context.Context, propertyID int64) (int, error)
	ListOverlappingBookings(ctx context.Context, propertyID int64, startIncl, endExcl time.Time) ([]*domain.Booking, error)
	GetActiveRatePlan(ctx context.Context, propertyID int64) (*domain.RatePlan, error)
	FinanceTotalsByCurrency(ctx context.Context, propertyID int64, periodStart, periodEnd time.Time) ([]*domain.CurrencyTotals, error)
	InsertPriceRecommendation(ctx context.Context, rec *domain.PriceRecommendation) (*domain.PriceRecommendation, error)
	ListPriceRecommendations(ctx context.Context, opts ListPriceRecommendationsOpts) ([]*domain.PriceRecommendation, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
