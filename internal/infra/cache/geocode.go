package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/internal/domain/geo"
	"github.com/gocabs/rideflow/pkg/logger"
	"github.com/gocabs/rideflow/pkg/metrics"
)

// KVStore is the Get/Set slice of the redis adapter.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// GeocodeCache caches reverse lookups. Addresses move rarely; keys are
// quantized to ~11 m so nearby fixes share an entry. Forward searches pass
// through untouched.
type GeocodeCache struct {
	next    outbound.PlaceSearch
	store   KVStore
	ttl     time.Duration
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewGeocodeCache(next outbound.PlaceSearch, store KVStore, ttl time.Duration, log logger.Logger, m metrics.Metrics) *GeocodeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &GeocodeCache{next: next, store: store, ttl: ttl, logger: log, metrics: m}
}

func (c *GeocodeCache) Search(ctx context.Context, text string, limit int) ([]outbound.Place, error) {
	return c.next.Search(ctx, text, limit)
}

func (c *GeocodeCache) Reverse(ctx context.Context, p geo.GeoPoint) (string, error) {
	key := fmt.Sprintf("geocode:%.4f:%.4f", p.Latitude, p.Longitude)

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		// Cache trouble never blocks a lookup.
		c.logger.Warn(ctx, "geocode cache read failed", logger.WithError(err))
	} else if ok {
		c.metrics.IncCacheHit("geocode")
		return cached, nil
	} else {
		c.metrics.IncCacheMiss("geocode")
	}

	address, err := c.next.Reverse(ctx, p)
	if err != nil {
		return "", err
	}

	if address != "" {
		if err := c.store.Set(ctx, key, address, c.ttl); err != nil {
			c.logger.Warn(ctx, "geocode cache write failed", logger.WithError(err))
		}
	}
	return address, nil
}
