package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restoflow/entity"
)

// CatalogCache keeps each tenant's item list in Redis so the POS
// terminals' frequent catalog reads skip the database. A nil *CatalogCache
// is valid and behaves as a permanent miss, so Redis stays optional.
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Client: client, TTL: ttl}
}

func (c *CatalogCache) itemsKey(restaurantID uint) string {
	return "catalog:items:" + strconv.FormatUint(uint64(restaurantID), 10)
}

func (c *CatalogCache) GetItems(ctx context.Context, restaurantID uint) ([]entity.Item, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, c.itemsKey(restaurantID)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []entity.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *CatalogCache) SetItems(ctx context.Context, restaurantID uint, items []entity.Item) error {
	if c == nil || c.Client == nil {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.itemsKey(restaurantID), raw, c.TTL).Err()
}

// Invalidate drops the tenant's entry after any write that changes
// items or stock.
func (c *CatalogCache) Invalidate(ctx context.Context, restaurantID uint) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Del(ctx, c.itemsKey(restaurantID)).Err()
}
