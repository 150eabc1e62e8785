package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

var propertiesColumns = []string{"id", "owner_id", "type", "name", "city", "is_active", "created_at", "updated_at"}

func (s *store) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	query := builder().Select(propertiesColumns...).
		From(tableProperties).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Property](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error) {
	query := builder().Select(propertiesColumns...).
		From(tableProperties).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Property](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
