package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MovieAnalytics struct {
	MovieID      int
	TotalTickets int
	TotalGmv     decimal.Decimal
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both ends to whole days. End is inclusive.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{Start: start, End: end}, nil
}

type AnalyticsRepository interface {
	MovieAnalytics(ctx context.Context, movieID int, dates DateRange) (*MovieAnalytics, error)
}
