package cache

import (
	"context"
	"testing"
	"time"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSnapshotCache(client, DefaultSnapshotCacheConfig()), mr
}

func TestSnapshotCacheMissReturnsNil(t *testing.T) {
	cache, _ := setupCache(t)

	snapshot, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSnapshotCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	original := &alerts.Snapshot{
		Trucks: []*models.Truck{
			{Number: "T-01", Mileage: 120000, Status: models.TruckStatusActive},
		},
		Drivers: []*models.Driver{
			{Name: "Pedro Soto", Rut: "12.345.678-9"},
		},
	}

	require.NoError(t, cache.Set(ctx, original))

	cached, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Len(t, cached.Trucks, 1)
	assert.Equal(t, "T-01", cached.Trucks[0].Number)
	assert.Equal(t, 120000, cached.Trucks[0].Mileage)
	require.Len(t, cached.Drivers, 1)
	assert.Equal(t, "Pedro Soto", cached.Drivers[0].Name)
}

func TestSnapshotCacheExpires(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &alerts.Snapshot{}))

	mr.FastForward(31 * time.Second)

	cached, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestSnapshotCacheInvalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &alerts.Snapshot{}))
	require.NoError(t, cache.Invalidate(ctx))

	cached, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestSnapshotCacheConfigDefaults(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewSnapshotCache(client, SnapshotCacheConfig{})
	assert.Equal(t, "tvar:snapshot", cache.key())
	assert.Equal(t, 30*time.Second, cache.config.TTL)
}
