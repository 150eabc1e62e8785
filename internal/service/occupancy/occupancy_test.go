package occupancy

import (
	"testing"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(unitID int64, checkIn, checkOut time.Time, amount string) *domain.Booking {
	return &domain.Booking{
		UnitID:   unitID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestNights(t *testing.T) {
	t.Parallel()

	start := day(2024, time.June, 1)
	endExcl := day(2024, time.July, 1)

	cases := []struct {
		name string
		b    *domain.Booking
		want int
	}{
		{"fully inside", booking(1, day(2024, time.June, 10), day(2024, time.June, 13), "300"), 3},
		{"clipped at start", booking(1, day(2024, time.May, 28), day(2024, time.June, 3), "600"), 2},
		{"clipped at end", booking(1, day(2024, time.June, 29), day(2024, time.July, 5), "600"), 2},
		{"spans whole window", booking(1, day(2024, time.May, 1), day(2024, time.August, 1), "900"), 30},
		{"outside window", booking(1, day(2024, time.July, 10), day(2024, time.July, 12), "200"), 0},
		{"zero nights", booking(1, day(2024, time.June, 10), day(2024, time.June, 10), "100"), 0},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := Nights(c.b, start, endExcl); got != c.want {
				t.Errorf("Nights = %d, want %d", got, c.want)
			}
		})
	}
}

func TestWindowRatio(t *testing.T) {
	t.Parallel()

	start := day(2024, time.June, 1)
	endExcl := day(2024, time.June, 11) // 10 days

	bookings := []*domain.Booking{
		booking(1, day(2024, time.June, 1), day(2024, time.June, 6), "500"), // 5 nights
	}

	got := WindowRatio(bookings, 2, start, endExcl)
	if got == nil {
		t.Fatal("WindowRatio = nil, want value")
	}
	if *got != 0.25 { // 5 / (2*10)
		t.Errorf("WindowRatio = %v, want 0.25", *got)
	}
}

func TestWindowRatioUndefined(t *testing.T) {
	t.Parallel()

	start := day(2024, time.June, 1)
	endExcl := day(2024, time.June, 11)

	if got := WindowRatio(nil, 0, start, endExcl); got != nil {
		t.Errorf("WindowRatio with zero units = %v, want nil", *got)
	}
	if got := WindowRatio(nil, 2, start, start); got != nil {
		t.Errorf("WindowRatio with empty window = %v, want nil", *got)
	}
}

// Two bookings on the same unit over the same nights are summed, not
// deduplicated. This mirrors upstream behavior: double-booked units count
// twice.
func TestOccupiedNightsDoubleBookingCountsTwice(t *testing.T) {
	t.Parallel()

	start := day(2024, time.June, 1)
	endExcl := day(2024, time.June, 11)

	bookings := []*domain.Booking{
		booking(7, day(2024, time.June, 2), day(2024, time.June, 5), "300"),
		booking(7, day(2024, time.June, 2), day(2024, time.June, 5), "300"),
	}

	if got := OccupiedNights(bookings, start, endExcl); got != 6 {
		t.Errorf("OccupiedNights = %d, want 6 (no overlap dedup)", got)
	}
}

func TestDailyLoads(t *testing.T) {
	t.Parallel()

	periodStart := day(2024, time.June, 1)
	periodEnd := day(2024, time.June, 30)

	bookings := []*domain.Booking{
		booking(1, day(2024, time.June, 10), day(2024, time.June, 13), "300"),
	}

	loads := DailyLoads(bookings, periodStart, periodEnd)
	if len(loads) != 3 {
		t.Fatalf("len(loads) = %d, want 3", len(loads))
	}

	for d := 10; d <= 12; d++ {
		load, ok := loads[day(2024, time.June, d)]
		if !ok {
			t.Fatalf("missing load for june %d", d)
		}
		if len(load.Units) != 1 {
			t.Errorf("june %d: %d units occupied, want 1", d, len(load.Units))
		}
		if !load.Revenue.Equal(decimal.RequireFromString("100")) {
			t.Errorf("june %d: revenue = %s, want 100", d, load.Revenue)
		}
	}
}

func TestDailyLoadsClipsToPeriod(t *testing.T) {
	t.Parallel()

	periodStart := day(2024, time.June, 1)
	periodEnd := day(2024, time.June, 30)

	// 4-night stay straddling the period end: only jun 29 and jun 30 land
	// inside, each carrying a quarter of the amount.
	bookings := []*domain.Booking{
		booking(2, day(2024, time.June, 29), day(2024, time.July, 3), "400"),
	}

	loads := DailyLoads(bookings, periodStart, periodEnd)
	if len(loads) != 2 {
		t.Fatalf("len(loads) = %d, want 2", len(loads))
	}
	for _, d := range []time.Time{day(2024, time.June, 29), day(2024, time.June, 30)} {
		load, ok := loads[d]
		if !ok {
			t.Fatalf("missing load for %v", d)
		}
		if !load.Revenue.Equal(decimal.RequireFromString("100")) {
			t.Errorf("%v: revenue = %s, want 100", d, load.Revenue)
		}
	}
}

func TestDailyLoadsZeroNightBooking(t *testing.T) {
	t.Parallel()

	periodStart := day(2024, time.June, 1)
	periodEnd := day(2024, time.June, 30)

	bookings := []*domain.Booking{
		booking(3, day(2024, time.June, 5), day(2024, time.June, 5), "999"),
	}

	if loads := DailyLoads(bookings, periodStart, periodEnd); len(loads) != 0 {
		t.Errorf("zero-night booking produced %d loaded days, want 0", len(loads))
	}
}
