// Package period normalizes (year, month) pairs into calendar-day bounds and
// classifies dates into pricing seasons.
package period

import (
	"time"

	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
)

const (
	SeasonLow      = "low"
	SeasonShoulder = "shoulder"
	SeasonHigh     = "high"
)

// Bounds returns the first and last calendar day of the month, both at UTC
// midnight, inclusive. Leap years are handled by time.Date normalization.
func Bounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, constants.ErrInvalidPeriod
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// Days returns the number of calendar days in [start, end] inclusive.
func Days(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Season buckets the month: Dec-Feb is low, Jun-Sep is high, the rest is
// shoulder.
func Season(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return SeasonLow
	case time.June, time.July, time.August, time.September:
		return SeasonHigh
	default:
		return SeasonShoulder
	}
}
