package cache

import (
	"context"
	"encoding/json"
	"time"

	"tvar-backend/internal/alerts"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps a short-lived copy of the fleet snapshot in Redis
// so repeated alert requests do not hit Mongo for every collection.
type SnapshotCache struct {
	client *redis.Client
	config SnapshotCacheConfig
}

type SnapshotCacheConfig struct {
	KeyPrefix string
	TTL       time.Duration
}

func DefaultSnapshotCacheConfig() SnapshotCacheConfig {
	return SnapshotCacheConfig{
		KeyPrefix: "tvar:",
		TTL:       30 * time.Second,
	}
}

func NewSnapshotCache(client *redis.Client, config SnapshotCacheConfig) *SnapshotCache {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "tvar:"
	}
	if config.TTL <= 0 {
		config.TTL = 30 * time.Second
	}

	return &SnapshotCache{
		client: client,
		config: config,
	}
}

func (c *SnapshotCache) key() string {
	return c.config.KeyPrefix + "snapshot"
}

// Get returns the cached snapshot, or (nil, nil) on a cache miss.
func (c *SnapshotCache) Get(ctx context.Context) (*alerts.Snapshot, error) {
	data, err := c.client.Get(ctx, c.key()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot alerts.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot *alerts.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key(), data, c.config.TTL).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key()).Err()
}
