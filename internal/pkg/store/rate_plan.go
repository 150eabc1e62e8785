package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

var ratePlansColumns = []string{"id", "property_id", "name", "base_price", "is_active"}

// GetActiveRatePlan returns the property's active rate plan with the lowest
// id, the deterministic pricing baseline. ErrDBNotFound when the property has
// no active plan.
func (s *store) GetActiveRatePlan(ctx context.Context, propertyID int64) (*domain.RatePlan, error) {
	query := builder().Select(ratePlansColumns...).
		From(tableRatePlans).
		Where(sq.Eq{
			"property_id": propertyID,
			"is_active":   true,
		}).
		OrderBy("id").
		Limit(1)

	selected, err := xpgx.Getx[domain.RatePlan](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
