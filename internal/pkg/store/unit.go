package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

var unitsColumns = []string{"id", "property_id", "code", "status", "is_active", "created_at", "updated_at"}

func (s *store) GetUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	query := builder().Select(unitsColumns...).
		From(tableUnits).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Unit](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// CountActiveUnits counts bookable inventory: units that are both in the
// active status and not soft-disabled.
func (s *store) CountActiveUnits(ctx context.Context, propertyID int64) (int, error) {
	query := builder().Select("count(*)").
		From(tableUnits).
		Where(sq.Eq{
			"property_id": propertyID,
			"status":      domain.UnitStatusActive,
			"is_active":   true,
		})

	count, err := xpgx.GetScalarx[int](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}
