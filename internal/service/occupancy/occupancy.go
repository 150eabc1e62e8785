// Package occupancy computes occupied nights and per-day unit loads from
// booking intervals. All functions are pure over the bookings they are given:
// status filtering (cancelled, no-show) happens at the store query, every
// booking passed in counts as occupying.
package occupancy

import (
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// Nights returns the number of nights the booking occupies inside the
// half-open window [start, endExcl). Zero-night and non-overlapping bookings
// contribute nothing.
func Nights(b *domain.Booking, start, endExcl time.Time) int {
	from := period.Day(b.CheckIn)
	if from.Before(start) {
		from = start
	}
	to := period.Day(b.CheckOut)
	if to.After(endExcl) {
		to = endExcl
	}
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// OccupiedNights sums Nights over all bookings. Overlapping bookings on the
// same unit are summed without deduplication: a double-booked unit counts
// twice.
func OccupiedNights(bookings []*domain.Booking, start, endExcl time.Time) int {
	total := 0
	for _, b := range bookings {
		total += Nights(b, start, endExcl)
	}
	return total
}

// WindowRatio returns occupied_nights / (unitsCount * days) for the window
// [start, endExcl). A zero unit count or empty window means occupancy is
// undefined, which is distinct from zero occupancy: nil is returned.
func WindowRatio(bookings []*domain.Booking, unitsCount int, start, endExcl time.Time) *float64 {
	days := int(endExcl.Sub(start).Hours() / 24)
	if unitsCount == 0 || days <= 0 {
		return nil
	}

	ratio := float64(OccupiedNights(bookings, start, endExcl)) / float64(unitsCount*days)
	return &ratio
}

// DayLoad accumulates the occupied unit set and nightly revenue for one
// calendar day.
type DayLoad struct {
	Units   map[int64]struct{}
	Revenue decimal.Decimal
}

func (l *DayLoad) addUnit(unitID int64) {
	if l.Units == nil {
		l.Units = make(map[int64]struct{})
	}
	l.Units[unitID] = struct{}{}
}

// DailyLoads spreads each booking's amount evenly over its full stay
// (amount / total nights, not rate-plan-aware) and accumulates, for every
// calendar day in [periodStart, periodEnd] inclusive, the set of occupied
// units and the revenue attributed to that day. Days without load are absent
// from the map.
func DailyLoads(bookings []*domain.Booking, periodStart, periodEnd time.Time) map[time.Time]*DayLoad {
	loads := make(map[time.Time]*DayLoad)

	for _, b := range bookings {
		checkIn := period.Day(b.CheckIn)
		checkOut := period.Day(b.CheckOut)

		totalNights := int(checkOut.Sub(checkIn).Hours() / 24)
		if totalNights <= 0 {
			continue
		}
		revenuePerNight := b.Amount.Div(decimal.NewFromInt(int64(totalNights)))

		from := checkIn
		if from.Before(periodStart) {
			from = periodStart
		}
		to := checkOut
		endExcl := periodEnd.AddDate(0, 0, 1)
		if to.After(endExcl) {
			to = endExcl
		}

		for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
			load, ok := loads[day]
			if !ok {
				load = &DayLoad{Revenue: decimal.Zero}
				loads[day] = load
			}
			load.addUnit(b.UnitID)
			load.Revenue = load.Revenue.Add(revenuePerNight)
		}
	}

	return loads
}
