// Package cache holds the read-through cache for the public scholarship
// catalog.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

const (
	listKey    = "cache:scholarships"
	itemPrefix = "cache:scholarship:"
)

// CatalogCache caches scholarship reads in Redis as JSON.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache builds a cache. A zero ttl keeps entries until invalidated.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// GetList returns the cached catalog and whether it was present.
func (c *CatalogCache) GetList(ctx context.Context) ([]domain.Scholarship, bool, error) {
	var items []domain.Scholarship
	ok, err := c.get(ctx, listKey, &items)
	if !ok || err != nil {
		return nil, false, err
	}
	return items, true, nil
}

// SetList stores the full catalog.
func (c *CatalogCache) SetList(ctx context.Context, items []domain.Scholarship) error {
	if items == nil {
		items = []domain.Scholarship{}
	}
	return c.set(ctx, listKey, items)
}

// Get returns a cached scholarship by id.
func (c *CatalogCache) Get(ctx context.Context, id string) (*domain.Scholarship, bool, error) {
	var item domain.Scholarship
	ok, err := c.get(ctx, itemPrefix+id, &item)
	if !ok || err != nil {
		return nil, false, err
	}
	return &item, true, nil
}

// Set stores a single scholarship.
func (c *CatalogCache) Set(ctx context.Context, item *domain.Scholarship) error {
	return c.set(ctx, itemPrefix+item.ID, item)
}

// Invalidate drops the cached catalog and the given items.
func (c *CatalogCache) Invalidate(ctx context.Context, ids ...string) error {
	keys := []string{listKey}
	for _, id := range ids {
		keys = append(keys, itemPrefix+id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *CatalogCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// corrupt entry; treat as a miss so the caller repopulates it
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
