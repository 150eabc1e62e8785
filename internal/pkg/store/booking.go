package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/xpgx"
)

var bookingsColumns = []string{"id", "property_id", "unit_id", "check_in", "check_out", "status", "amount", "currency"}

// ListOverlappingBookings returns the property's bookings whose [check_in,
// check_out) interval intersects [startIncl, endExcl). Cancelled and no-show
// bookings do not occupy inventory and are filtered here, so downstream
// aggregation treats every returned booking as occupying.
func (s *store) ListOverlappingBookings(ctx context.Context, propertyID int64, startIncl, endExcl time.Time) ([]*domain.Booking, error) {
	query := builder().Select(bookingsColumns...).
		From(tableBookings).
		Where(sq.Eq{"property_id": propertyID}).
		Where(sq.Lt{"check_in": endExcl}).
		Where(sq.Gt{"check_out": startIncl}).
		Where(sq.NotEq{"status": []string{domain.BookingStatusCancelled, domain.BookingStatusNoShow}}).
		OrderBy("check_in", "id")

	selected, err := xpgx.Selectx[domain.Booking](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
