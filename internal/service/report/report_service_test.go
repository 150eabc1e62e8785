package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store/storetest"
	"github.com/paskalex1/sochirent-crm/internal/service/metrics"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(fake *storetest.Fake) *Service {
	return NewService(fake, metrics.NewService(fake))
}

func TestOwnerReportCombinesFinanceAndOccupancy(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	fake.Properties[1] = &domain.Property{ID: 1, OwnerID: 10, Type: domain.PropertyTypeHotel, Name: "Marina Hotel"}
	fake.Properties[2] = &domain.Property{ID: 2, OwnerID: 10, Type: domain.PropertyTypeShortTerm, Name: "Seaside Flat"}
	fake.Properties[3] = &domain.Property{ID: 3, OwnerID: 99, Type: domain.PropertyTypeShortTerm, Name: "Other Owner"}

	fake.Units[1] = &domain.Unit{ID: 1, PropertyID: 1, Status: domain.UnitStatusActive, IsActive: true}
	fake.Units[2] = &domain.Unit{ID: 2, PropertyID: 2, Status: domain.UnitStatusActive, IsActive: true}

	fake.Bookings = []*domain.Booking{
		{ID: 1, PropertyID: 2, UnitID: 2, CheckIn: day(2024, time.June, 1), CheckOut: day(2024, time.June, 16),
			Amount: decimal.RequireFromString("1500"), Status: "confirmed"},
	}

	fake.Finance[1] = []*domain.CurrencyTotals{
		{Currency: "RUB", IncomeTotal: decimal.RequireFromString("5000"), ExpenseTotal: decimal.RequireFromString("1200")},
	}

	svc := newService(fake)
	report, err := svc.OwnerReport(context.Background(), 10, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Properties) != 2 {
		t.Fatalf("len(properties) = %d, want 2", len(report.Properties))
	}

	hotel := report.Properties[0]
	if hotel.PropertyID != 1 {
		t.Fatalf("first property id = %d, want 1 (owner order)", hotel.PropertyID)
	}
	if hotel.HotelSummary == nil {
		t.Fatal("hotel property: hotel_summary = nil")
	}
	if hotel.Occupancy != nil {
		t.Error("hotel property: simplified occupancy should be absent")
	}
	if len(hotel.Finance) != 1 {
		t.Fatalf("hotel finance rows = %d, want 1", len(hotel.Finance))
	}
	if fin := hotel.Finance[0]; fin.Currency != "RUB" || fin.IncomeTotal != 5000 || fin.ExpenseTotal != 1200 || fin.NetTotal != 3800 {
		t.Errorf("finance = %+v, want RUB 5000/1200/3800", fin)
	}

	flat := report.Properties[1]
	if flat.HotelSummary != nil {
		t.Error("non-hotel property: hotel_summary should be absent")
	}
	if flat.Occupancy == nil {
		t.Fatal("non-hotel property: occupancy = nil")
	}
	// 15 nights / (1 unit * 30 days).
	if flat.Occupancy.OccupiedNights != 15 {
		t.Errorf("occupied_nights = %d, want 15", flat.Occupancy.OccupiedNights)
	}
	if flat.Occupancy.OccupancyAvg == nil || *flat.Occupancy.OccupancyAvg != 0.5 {
		t.Errorf("occupancy_avg = %v, want 0.5", flat.Occupancy.OccupancyAvg)
	}
}

func TestOwnerReportInvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := newService(storetest.New())
	if _, err := svc.OwnerReport(context.Background(), 10, 2024, 0); !errors.Is(err, constants.ErrInvalidPeriod) {
		t.Errorf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestOwnerReportNoProperties(t *testing.T) {
	t.Parallel()

	svc := newService(storetest.New())
	report, err := svc.OwnerReport(context.Background(), 42, 2024, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Properties) != 0 {
		t.Errorf("len(properties) = %d, want 0", len(report.Properties))
	}
}

func TestPropertyOccupancyNoActiveUnits(t *testing.T) {
	t.Parallel()

	fake := storetest.New()
	fake.Properties[5] = &domain.Property{ID: 5, Type: domain.PropertyTypeLongTerm}

	svc := newService(fake)
	occ, err := svc.PropertyOccupancy(context.Background(), 5, 2024, 2)
	if err != nil {
		t.Fatal(err)
	}

	if occ.UnitsCount != 0 {
		t.Errorf("units_count = %d, want 0", occ.UnitsCount)
	}
	if occ.OccupancyAvg != nil {
		t.Errorf("occupancy_avg = %v, want nil (undefined, not zero)", *occ.OccupancyAvg)
	}
	if occ.DaysInPeriod != 29 {
		t.Errorf("days_in_period = %d, want 29 (leap february)", occ.DaysInPeriod)
	}
}

func TestPropertyOccupancyUnknownProperty(t *testing.T) {
	t.Parallel()

	svc := newService(storetest.New())
	if _, err := svc.PropertyOccupancy(context.Background(), 404, 2024, 6); !errors.Is(err, constants.ErrDBNotFound) {
		t.Errorf("err = %v, want ErrDBNotFound", err)
	}
}
