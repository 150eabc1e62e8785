package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

// FinanceTotalsByCurrency aggregates the property's ledger rows over
// [periodStart, periodEnd] inclusive into income/expense totals per currency.
// Currencies are kept apart, never converted.
func (s *store) FinanceTotalsByCurrency(ctx context.Context, propertyID int64, periodStart, periodEnd time.Time) ([]*domain.CurrencyTotals, error) {
	query := builder().Select(
		"currency",
		"coalesce(sum(amount) filter (where record_type = 'income'), 0) as income_total",
		"coalesce(sum(amount) filter (where record_type = 'expense'), 0) as expense_total",
	).
		From(tableFinanceRecords).
		Where(sq.Eq{"property_id": propertyID}).
		Where(sq.GtOrEq{"operation_date": periodStart}).
		Where(sq.LtOrEq{"operation_date": periodEnd}).
		GroupBy("currency").
		OrderBy("currency")

	selected, err := xpgx.Selectx[domain.CurrencyTotals](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
