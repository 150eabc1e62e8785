package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
)

const (
	tableProperties           = "properties"
	tableUnits                = "units"
	tableBookings             = "bookings"
	tableRatePlans            = "rate_plans"
	tableFinanceRecords       = "finance_records"
	tablePriceRecommendations = "price_recommendations"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
