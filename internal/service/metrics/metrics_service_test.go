package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/storetest"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newHotelFixture() *storetest.Fake {
	fake := storetest.New()
	fake.Properties[1] = &domain.Property{ID: 1, OwnerID: 10, Type: domain.PropertyTypeHotel, Name: "Primorskaya"}
	fake.Units[1] = &domain.Unit{ID: 1, PropertyID: 1, Status: domain.UnitStatusActive, IsActive: true}
	fake.Units[2] = &domain.Unit{ID: 2, PropertyID: 1, Status: domain.UnitStatusActive, IsActive: true}
	return fake
}

// Property with 2 active units and one 3-night booking (300 for 3 nights)
// fully inside june: the 3 occupied days carry occupancy 0.5, adr 100,
// revpar 50; the rest of the month has occupancy 0 (not nil), adr nil,
// revpar 0.
func TestStatsSingleBooking(t *testing.T) {
	t.Parallel()

	fake := newHotelFixture()
	fake.Bookings = []*domain.Booking{{
		ID: 1, PropertyID: 1, UnitID: 1,
		CheckIn: day(2024, time.June, 10), CheckOut: day(2024, time.June, 13),
		Amount: decimal.RequireFromString("300"), Currency: "RUB", Status: "confirmed",
	}}

	svc := NewService(fake)
	stats, err := svc.HotelStats(context.Background(), 1, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Summary.RoomsTotal != 2 {
		t.Errorf("rooms_total = %d, want 2", stats.Summary.RoomsTotal)
	}
	if len(stats.Days) != 30 {
		t.Fatalf("len(days) = %d, want 30", len(stats.Days))
	}

	for _, d := range stats.Days {
		occupied := d.Date >= "2024-06-10" && d.Date <= "2024-06-12"
		if occupied {
			if d.RoomsOccupied != 1 {
				t.Errorf("%s: rooms_occupied = %d, want 1", d.Date, d.RoomsOccupied)
			}
			if d.Occupancy == nil || *d.Occupancy != 0.5 {
				t.Errorf("%s: occupancy = %v, want 0.5", d.Date, d.Occupancy)
			}
			if d.ADR == nil || *d.ADR != 100 {
				t.Errorf("%s: adr = %v, want 100", d.Date, d.ADR)
			}
			if d.RevPAR == nil || *d.RevPAR != 50 {
				t.Errorf("%s: revpar = %v, want 50", d.Date, d.RevPAR)
			}
			if d.RoomsRevenue != 100 {
				t.Errorf("%s: rooms_revenue = %v, want 100", d.Date, d.RoomsRevenue)
			}
		} else {
			if d.Occupancy == nil || *d.Occupancy != 0 {
				t.Errorf("%s: occupancy = %v, want 0", d.Date, d.Occupancy)
			}
			if d.ADR != nil {
				t.Errorf("%s: adr = %v, want nil", d.Date, *d.ADR)
			}
			if d.RevPAR == nil || *d.RevPAR != 0 {
				t.Errorf("%s: revpar = %v, want 0", d.Date, d.RevPAR)
			}
		}
	}

	if stats.Summary.RoomsRevenueTotal != 300 {
		t.Errorf("rooms_revenue_total = %v, want 300", stats.Summary.RoomsRevenueTotal)
	}
	if stats.Summary.ADRAvg == nil || *stats.Summary.ADRAvg != 100 {
		t.Errorf("adr_avg = %v, want 100", stats.Summary.ADRAvg)
	}
	if stats.Summary.RevPARAvg == nil || *stats.Summary.RevPARAvg != 5 {
		t.Errorf("revpar_avg = %v, want 5 (300 / (2*30))", stats.Summary.RevPARAvg)
	}
	// 3 days at 0.5, 27 at 0: mean = 1.5/30.
	if stats.Summary.OccupancyAvg == nil || *stats.Summary.OccupancyAvg != 0.05 {
		t.Errorf("occupancy_avg = %v, want 0.05", stats.Summary.OccupancyAvg)
	}
}

func TestStatsNoRooms(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	fake.Properties[1] = &domain.Property{ID: 1, Type: domain.PropertyTypeHotel}

	svc := NewService(fake)
	stats, err := svc.HotelStats(context.Background(), 1, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}

	if stats.Summary.OccupancyAvg != nil || stats.Summary.ADRAvg != nil || stats.Summary.RevPARAvg != nil {
		t.Errorf("summary averages = %+v, want all nil", stats.Summary)
	}
	for _, d := range stats.Days {
		if d.Occupancy != nil || d.ADR != nil || d.RevPAR != nil {
			t.Fatalf("%s: daily metrics not nil with zero rooms", d.Date)
		}
	}
}

func TestHotelStatsRejectsNonHotel(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	fake.Properties[1] = &domain.Property{ID: 1, Type: domain.PropertyTypeShortTerm}

	svc := NewService(fake)
	if _, err := svc.HotelStats(context.Background(), 1, 2024, 6); !errors.Is(err, constants.ErrNotHotel) {
		t.Errorf("err = %v, want ErrNotHotel", err)
	}
}

func TestHotelStatsUnknownProperty(t *testing.T) {
	t.Parallel()

	svc := NewService(storetest.New())
	if _, err := svc.HotelStats(context.Background(), 404, 2024, 6); !errors.Is(err, constants.ErrDBNotFound) {
		t.Errorf("err = %v, want ErrDBNotFound", err)
	}
}

func TestHotelStatsInvalidMonth(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	fake.Properties[1] = &domain.Property{ID: 1, Type: domain.PropertyTypeHotel}

	svc := NewService(fake)
	if _, err := svc.HotelStats(context.Background(), 1, 2024, 13); !errors.Is(err, constants.ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

// Identical inputs over unchanged data must serialize byte-identically.
func TestStatsDeterministic(t *testing.T) {
	t.Parallel()

	fake := newHotelFixture()
	fake.Bookings = []*domain.Booking{
		{ID: 1, PropertyID: 1, UnitID: 1, CheckIn: day(2024, time.June, 3), CheckOut: day(2024, time.June, 9),
			Amount: decimal.RequireFromString("612.50"), Status: "confirmed"},
		{ID: 2, PropertyID: 1, UnitID: 2, CheckIn: day(2024, time.May, 28), CheckOut: day(2024, time.June, 4),
			Amount: decimal.RequireFromString("777"), Status: "confirmed"},
	}

	svc := NewService(fake)

	first, err := svc.HotelStats(context.Background(), 1, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.HotelStats(context.Background(), 1, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}
