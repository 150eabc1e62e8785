// Package storetest provides an in-memory store.Store for service tests.
package storetest

import (
	"context"
	"sort"
	"time"

	"github.com/paskalex1/sochirent-crm/internal/domain"
	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"github.com/paskalex1/sochirent-crm/internal/pkg/store"
)

type Fake struct {
	Properties      map[int64]*domain.Property
	Units           map[int64]*domain.Unit
	Bookings        []*domain.Booking
	RatePlans       []*domain.RatePlan
	Finance         map[int64][]*domain.CurrencyTotals
	Recommendations []*domain.PriceRecommendation

	nextRecID int64
}

var _ store.Store = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		Properties: make(map[int64]*domain.Property),
		Units:      make(map[int64]*domain.Unit),
		Finance:    make(map[int64][]*domain.CurrencyTotals),
	}
}

func (f *Fake) GetProperty(_ context.Context, id int64) (*domain.Property, error) {
	prop, ok := f.Properties[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return prop, nil
}

func (f *Fake) ListPropertiesByOwner(_ context.Context, ownerID int64) ([]*domain.Property, error) {
	var out []*domain.Property
	for _, p := range f.Properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) GetUnit(_ context.Context, id int64) (*domain.Unit, error) {
	unit, ok := f.Units[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return unit, nil
}

func (f *Fake) CountActiveUnits(_ context.Context, propertyID int64) (int, error) {
	count := 0
	for _, u := range f.Units {
		if u.PropertyID == propertyID && u.Status == domain.UnitStatusActive && u.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *Fake) ListOverlappingBookings(_ context.Context, propertyID int64, startIncl, endExcl time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.Bookings {
		if b.PropertyID != propertyID {
			continue
		}
		if b.Status == domain.BookingStatusCancelled || b.Status == domain.BookingStatusNoShow {
			continue
		}
		if !b.CheckIn.Before(endExcl) || !b.CheckOut.After(startIncl) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.Before(out[j].CheckIn)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *Fake) GetActiveRatePlan(_ context.Context, propertyID int64) (*domain.RatePlan, error) {
	var best *domain.RatePlan
	for _, rp := range f.RatePlans {
		if rp.PropertyID != propertyID || !rp.IsActive {
			continue
		}
		if best == nil || rp.ID < best.ID {
			best = rp
		}
	}
	if best == nil {
		return nil, constants.ErrDBNotFound
	}
	return best, nil
}

func (f *Fake) FinanceTotalsByCurrency(_ context.Context, propertyID int64, _, _ time.Time) ([]*domain.CurrencyTotals, error) {
	return f.Finance[propertyID], nil
}

func (f *Fake) InsertPriceRecommendation(_ context.Context, rec *domain.PriceRecommendation) (*domain.PriceRecommendation, error) {
	f.nextRecID++
	inserted := *rec
	inserted.ID = f.nextRecID
	inserted.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextRecID) * time.Second)
	f.Recommendations = append(f.Recommendations, &inserted)
	return &inserted, nil
}

func (f *Fake) ListPriceRecommendations(_ context.Context, opts store.ListPriceRecommendationsOpts) ([]*domain.PriceRecommendation, error) {
	var out []*domain.PriceRecommendation
	for _, rec := range f.Recommendations {
		if rec.UnitID != opts.UnitID {
			continue
		}
		if opts.DateFrom != nil && rec.Date.Before(*opts.DateFrom) {
			continue
		}
		if opts.DateTo != nil && rec.Date.After(*opts.DateTo) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
