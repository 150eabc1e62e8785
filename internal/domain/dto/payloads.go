// Package dto holds the JSON payload shapes returned by the API. Monetary
// values are computed in decimal and converted to float64 only here; metrics
// with an undefined denominator are nil, not zero.
package dto

type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type PriceSuggestion struct {
	UnitID           int64    `json:"unit_id"`
	Date             string   `json:"date"`
	BasePrice        float64  `json:"base_price"`
	RecommendedPrice float64  `json:"recommended_price"`
	MinPrice         float64  `json:"min_price"`
	MaxPrice         float64  `json:"max_price"`
	Occupancy7d      *float64 `json:"occupancy_7d"`
	Occupancy30d     *float64 `json:"occupancy_30d"`
	Season           string   `json:"season"`
	Notes            string   `json:"notes"`
}

type PriceRecommendationRow struct {
	ID               int64    `json:"id"`
	UnitID           int64    `json:"unit_id"`
	Date             string   `json:"date"`
	BasePrice        float64  `json:"base_price"`
	RecommendedPrice float64  `json:"recommended_price"`
	MinPrice         float64  `json:"min_price"`
	MaxPrice         float64  `json:"max_price"`
	Occupancy7d      *float64 `json:"occupancy_7d"`
	Occupancy30d     *float64 `json:"occupancy_30d"`
	Season           string   `json:"season"`
	Notes            string   `json:"notes"`
	CreatedAt        string   `json:"created_at"`
}

type DayStats struct {
	Date          string   `json:"date"`
	RoomsTotal    int      `json:"rooms_total"`
	RoomsOccupied int      `json:"rooms_occupied"`
	Occupancy     *float64 `json:"occupancy"`
	RoomsRevenue  float64  `json:"rooms_revenue"`
	ADR           *float64 `json:"adr"`
	RevPAR        *float64 `json:"revpar"`
}

type HotelSummary struct {
	RoomsTotal        int      `json:"rooms_total"`
	RoomsRevenueTotal float64  `json:"rooms_revenue_total"`
	OccupancyAvg      *float64 `json:"occupancy_avg"`
	ADRAvg            *float64 `json:"adr_avg"`
	RevPARAvg         *float64 `json:"revpar_avg"`
}

type HotelStats struct {
	PropertyID int64        `json:"property_id"`
	Period     Period       `json:"period"`
	Summary    HotelSummary `json:"summary"`
	Days       []DayStats   `json:"days"`
}

type PropertyOccupancy struct {
	PropertyID     int64    `json:"property_id"`
	Period         Period   `json:"period"`
	UnitsCount     int      `json:"units_count"`
	DaysInPeriod   int      `json:"days_in_period"`
	OccupiedNights int      `json:"occupied_nights"`
	OccupancyAvg   *float64 `json:"occupancy_avg"`
}

type CurrencyTotals struct {
	Currency     string  `json:"currency"`
	IncomeTotal  float64 `json:"income_total"`
	ExpenseTotal float64 `json:"expense_total"`
	NetTotal     float64 `json:"net_total"`
}

type PropertyReport struct {
	PropertyID   int64              `json:"property_id"`
	PropertyName string             `json:"property_name"`
	Finance      []CurrencyTotals   `json:"finance"`
	HotelSummary *HotelSummary      `json:"hotel_summary,omitempty"`
	Occupancy    *PropertyOccupancy `json:"occupancy,omitempty"`
}

type OwnerReport struct {
	OwnerID    int64            `json:"owner_id"`
	Period     Period           `json:"period"`
	Properties []PropertyReport `json:"properties"`
}
