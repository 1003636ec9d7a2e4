package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// AnalyticsCache keeps aggregated movie analytics in Redis. Every movie has a
// version counter that is part of each result key; Invalidate bumps it so
// results computed before a booking are never read again and expire by TTL.
// Get reports the version it read and Set stores under that version, so a
// result computed while a booking commits lands under the superseded version.
type AnalyticsCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewAnalyticsCache(client redis.UniversalClient, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedAnalytics struct {
	TotalTickets int             `json:"totalTickets"`
	TotalGmv     decimal.Decimal `json:"totalGmv"`
}

func versionKey(movieID int) string {
	return fmt.Sprintf("analytics:movie:%d:version", movieID)
}

func resultKey(movieID int, version int64, dates domain.DateRange) string {
	return fmt.Sprintf("analytics:movie:%d:v%d:%s:%s",
		movieID, version, dates.Start.Format(dateLayout), dates.End.Format(dateLayout))
}

func (c *AnalyticsCache) version(ctx context.Context, movieID int) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(movieID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return version, err
}

// Get returns the cached result for the movie's current version, or nil on a
// miss. The version is returned in both cases.
func (c *AnalyticsCache) Get(
	ctx context.Context,
	movieID int,
	dates domain.DateRange) (*domain.MovieAnalytics, int64, error) {

	version, err := c.version(ctx, movieID)
	if err != nil {
		return nil, 0, err
	}

	data, err := c.client.Get(ctx, resultKey(movieID, version, dates)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, version, nil
		}

		return nil, version, err
	}

	var cached cachedAnalytics
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, version, err
	}

	return &domain.MovieAnalytics{
		MovieID:      movieID,
		TotalTickets: cached.TotalTickets,
		TotalGmv:     cached.TotalGmv,
	}, version, nil
}

// Set stores result under version, which must be the version Get returned
// before result was computed.
func (c *AnalyticsCache) Set(
	ctx context.Context,
	result *domain.MovieAnalytics,
	dates domain.DateRange,
	version int64) error {

	data, err := json.Marshal(cachedAnalytics{
		TotalTickets: result.TotalTickets,
		TotalGmv:     result.TotalGmv,
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, resultKey(result.MovieID, version, dates), data, c.ttl).Err()
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, movieID int) error {
	return c.client.Incr(ctx, versionKey(movieID)).Err()
}
