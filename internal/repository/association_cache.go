package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

const associationCacheKey = "reconcile:user_area_division"

// AssociationCache keeps the externally sourced user association table in
// Redis so catalog refreshes keep working through directory outages.
type AssociationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssociationCache builds the cache. A nil client disables caching.
func NewAssociationCache(client *redis.Client, ttl time.Duration) *AssociationCache {
	return &AssociationCache{client: client, ttl: ttl}
}

// Get returns the cached table, or (nil, nil) on a cache miss.
func (c *AssociationCache) Get(ctx context.Context) (domain.AssociationTable, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, associationCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var table domain.AssociationTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Set stores the table with the configured TTL.
func (c *AssociationCache) Set(ctx context.Context, table domain.AssociationTable) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, associationCacheKey, raw, c.ttl).Err()
}
