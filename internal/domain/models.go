package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyTypeShortTerm  PropertyType = "short_term"
	PropertyTypeLongTerm   PropertyType = "long_term"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeHotel      PropertyType = "hotel"
)

type Property struct {
	ID        int64        `db:"id"`
	OwnerID   int64        `db:"owner_id"`
	Type      PropertyType `db:"type"`
	Name      string       `db:"name"`
	City      string       `db:"city"`
	IsActive  bool         `db:"is_active"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

const UnitStatusActive = "active"

type Unit struct {
	ID         int64     `db:"id"`
	PropertyID int64     `db:"property_id"`
	Code       string    `db:"code"`
	Status     string    `db:"status"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const (
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// Booking occupies a unit over the half-open interval [CheckIn, CheckOut).
type Booking struct {
	ID         int64           `db:"id"`
	PropertyID int64           `db:"property_id"`
	UnitID     int64           `db:"unit_id"`
	CheckIn    time.Time       `db:"check_in"`
	CheckOut   time.Time       `db:"check_out"`
	Status     string          `db:"status"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
}

type RatePlan struct {
	ID         int64           `db:"id"`
	PropertyID int64           `db:"property_id"`
	Name       string          `db:"name"`
	BasePrice  decimal.Decimal `db:"base_price"`
	IsActive   bool            `db:"is_active"`
}

// CurrencyTotals is one row of the per-property finance aggregate.
// Amounts are carried in the record currency, never converted.
type CurrencyTotals struct {
	Currency     string          `db:"currency"`
	IncomeTotal  decimal.Decimal `db:"income_total"`
	ExpenseTotal decimal.Decimal `db:"expense_total"`
}

func (t *CurrencyTotals) NetTotal() decimal.Decimal {
	return t.IncomeTotal.Sub(t.ExpenseTotal)
}

// PriceRecommendation is the append-only audit log of pricing queries.
// Rows are never updated or deleted; (unit_id, date) is deliberately not
// unique, so every query leaves a trace.
type PriceRecommendation struct {
	ID               int64           `db:"id"`
	UnitID           int64           `db:"unit_id"`
	Date             time.Time       `db:"date"`
	BasePrice        decimal.Decimal `db:"base_price"`
	RecommendedPrice decimal.Decimal `db:"recommended_price"`
	MinPrice         decimal.Decimal `db:"min_price"`
	MaxPrice         decimal.Decimal `db:"max_price"`
	Occupancy7d      *float64        `db:"occupancy_7d"`
	Occupancy30d     *float64        `db:"occupancy_30d"`
	Season           string          `db:"season"`
	Notes            string          `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
