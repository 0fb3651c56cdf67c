// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tick_store/internal/feature/marketdata/domain/entity"
	"tick_store/internal/feature/marketdata/usecase"
	"tick_store/internal/shared/dates"
)

// CachingSummaryRepository decorates a SummaryRepository with Redis caching.
// Completeness markers are write-once, so a cached "complete" answer never
// goes stale; only the per-ticker date list needs invalidation, on Mark.
type CachingSummaryRepository struct {
	inner     usecase.SummaryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SummaryRepository = (*CachingSummaryRepository)(nil)

// NewCachingSummaryRepository decorates a SummaryRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "summary".
func NewCachingSummaryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SummaryRepository, namespace string) *CachingSummaryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "summary"
	}
	return &CachingSummaryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Mark writes the marker through to the database and invalidates the cached
// date list for (kind, ticker).
func (c *CachingSummaryRepository) Mark(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) error {
	if err := c.inner.Mark(ctx, kind, tickerID, date); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Best effort: the database stays authoritative if Redis misbehaves.
	_ = c.rdb.Set(ctx, c.markerKey(kind, tickerID, date), "1", c.ttl).Err()
	_ = c.rdb.Del(ctx, c.datesKey(kind, tickerID)).Err()
	return nil
}

// IsComplete answers from the cache when possible, falling back to the
// database. Only positive answers are cached; a missing marker may appear at
// any moment.
func (c *CachingSummaryRepository) IsComplete(ctx context.Context, kind entity.Kind, tickerID uint, date time.Time) (bool, error) {
	if c.rdb == nil {
		return c.inner.IsComplete(ctx, kind, tickerID, date)
	}

	key := c.markerKey(kind, tickerID, date)
	if v, err := c.rdb.Get(ctx, key).Result(); err == nil && v == "1" {
		return true, nil
	}

	complete, err := c.inner.IsComplete(ctx, kind, tickerID, date)
	if err != nil {
		return false, err
	}
	if complete {
		_ = c.rdb.Set(ctx, key, "1", c.ttl).Err()
	}
	return complete, nil
}

// CompletedDates caches the full date list per (kind, ticker); Mark drops
// the entry.
func (c *CachingSummaryRepository) CompletedDates(ctx context.Context, kind entity.Kind, tickerID uint) ([]time.Time, error) {
	if c.rdb == nil {
		return c.inner.CompletedDates(ctx, kind, tickerID)
	}

	key := c.datesKey(kind, tickerID)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []time.Time
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.CompletedDates(ctx, kind, tickerID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// markerKey generates the cache key for one completeness marker.
func (c *CachingSummaryRepository) markerKey(kind entity.Kind, tickerID uint, date time.Time) string {
	return fmt.Sprintf("%s:%s:%d:%s", c.namespace, kind, tickerID, dates.Format(date))
}

// datesKey generates the cache key for the per-ticker date list.
func (c *CachingSummaryRepository) datesKey(kind entity.Kind, tickerID uint) string {
	return fmt.Sprintf("%s:%s:%d:dates", c.namespace, kind, tickerID)
}
