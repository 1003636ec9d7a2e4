package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
)

// AnalyticsCache stores aggregated results keyed by a per-movie version. Get
// returns a nil result on a miss together with the version it read; Set must be
// given that version so results computed across an invalidation are never
// served under the newer version.
type AnalyticsCache interface {
	Get(ctx context.Context, movieID int, dates domain.DateRange) (result *domain.MovieAnalytics, version int64, err error)
	Set(ctx context.Context, result *domain.MovieAnalytics, dates domain.DateRange, version int64) error
}

type Aggregator struct {
	repo   domain.AnalyticsRepository
	cache  AnalyticsCache
	logger *slog.Logger
}

// NewAggregator returns an Aggregator. cache may be nil.
func NewAggregator(repo domain.AnalyticsRepository, cache AnalyticsCache, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Aggregator{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// MovieAnalytics totals the tickets sold and their revenue for shows of the
// movie dated within [start, end]. The time of day is ignored on both ends.
func (a *Aggregator) MovieAnalytics(ctx context.Context, movieID int, start, end time.Time) (*domain.MovieAnalytics, error) {
	dates, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	var (
		version   int64
		cacheable bool
	)

	if a.cache != nil {
		cached, v, err := a.cache.Get(ctx, movieID, dates)
		switch {
		case err != nil:
			a.logger.WarnContext(ctx, "analytics cache read failed", "movieId", movieID, "error", err)
		case cached != nil:
			return cached, nil
		default:
			version, cacheable = v, true
		}
	}

	result, err := a.repo.MovieAnalytics(ctx, movieID, dates)
	if err != nil {
		return nil, domain.StorageError(err)
	}

	if result == nil {
		result = &domain.MovieAnalytics{}
	}
	result.MovieID = movieID

	if cacheable {
		if err := a.cache.Set(ctx, result, dates, version); err != nil {
			a.logger.WarnContext(ctx, "analytics cache write failed", "movieId", movieID, "error", err)
		}
	}

	return result, nil
}
