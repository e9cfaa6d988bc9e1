package cars

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/logger"
)

// cacheStore is the subset of the redis client the cache layer needs.
type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CarListKey() string
	CarDetailKey(id string) string
}

// Cache is a short-TTL read-through layer over the inventory. All failures
// degrade to a miss so the database stays the source of truth.
type Cache struct {
	store     cacheStore
	listTTL   time.Duration
	detailTTL time.Duration
	logg      *logger.Logger
}

// NewCache builds the cache layer. A nil store yields a cache that always misses.
func NewCache(store cacheStore, cfg config.CacheConfig, logg *logger.Logger) *Cache {
	return &Cache{
		store:     store,
		listTTL:   cfg.ListTTL,
		detailTTL: cfg.DetailTTL,
		logg:      logg,
	}
}

// GetList returns the cached inventory list, reporting whether it was present.
func (c *Cache) GetList(ctx context.Context) ([]CarDTO, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	raw, err := c.store.Get(ctx, c.store.CarListKey())
	if err != nil {
		return nil, false
	}
	var dtos []CarDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		c.warn(ctx, "discarding malformed cached car list", err)
		return nil, false
	}
	return dtos, true
}

// SetList stores the inventory list.
func (c *Cache) SetList(ctx context.Context, dtos []CarDTO) {
	if c == nil || c.store == nil {
		return
	}
	raw, err := json.Marshal(dtos)
	if err != nil {
		c.warn(ctx, "marshaling car list for cache", err)
		return
	}
	if err := c.store.Set(ctx, c.store.CarListKey(), string(raw), c.listTTL); err != nil {
		c.warn(ctx, "writing car list cache", err)
	}
}

// GetDetail returns the cached car record for the given id.
func (c *Cache) GetDetail(ctx context.Context, id string) (*CarDTO, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	raw, err := c.store.Get(ctx, c.store.CarDetailKey(id))
	if err != nil {
		return nil, false
	}
	var dto CarDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		c.warn(ctx, "discarding malformed cached car record", err)
		return nil, false
	}
	return &dto, true
}

// SetDetail stores a single car record.
func (c *Cache) SetDetail(ctx context.Context, dto *CarDTO) {
	if c == nil || c.store == nil || dto == nil {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		c.warn(ctx, "marshaling car record for cache", err)
		return
	}
	if err := c.store.Set(ctx, c.store.CarDetailKey(dto.ID.String()), string(raw), c.detailTTL); err != nil {
		c.warn(ctx, "writing car record cache", err)
	}
}

// Invalidate drops the list key plus the detail keys for the given ids.
func (c *Cache) Invalidate(ctx context.Context, ids ...string) {
	if c == nil || c.store == nil {
		return
	}
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, c.store.CarListKey())
	for _, id := range ids {
		if id == "" {
			continue
		}
		keys = append(keys, c.store.CarDetailKey(id))
	}
	if err := c.store.Del(ctx, keys...); err != nil {
		c.warn(ctx, "invalidating car cache", err)
	}
}

func (c *Cache) warn(ctx context.Context, msg string, err error) {
	if c.logg == nil {
		return
	}
	c.logg.Warn(c.logg.WithField(ctx, "cache_error", err.Error()), msg)
}
