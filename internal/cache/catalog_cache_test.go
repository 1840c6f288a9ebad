package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

func newCache(t *testing.T, ttl time.Duration) (*CatalogCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCatalogCache(client, ttl), mr
}

func TestCatalogListRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t, time.Minute)

	_, ok, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	items := []domain.Scholarship{{ID: "s1", Name: "Global Merit", Category: "Full fund"}}
	require.NoError(t, c.SetList(ctx, items))

	got, ok, err := c.GetList(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, items, got)
}

func TestCatalogEmptyListIsCached(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t, 0)

	require.NoError(t, c.SetList(ctx, nil))
	got, ok, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCatalogInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t, time.Minute)

	require.NoError(t, c.SetList(ctx, []domain.Scholarship{{ID: "s1"}}))
	require.NoError(t, c.Set(ctx, &domain.Scholarship{ID: "s1", Name: "One"}))

	require.NoError(t, c.Invalidate(ctx, "s1"))

	_, ok, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogTTLAndCorruptEntries(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, &domain.Scholarship{ID: "s1", Name: "One"}))
	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mr.Set(itemPrefix+"s2", "{not json"))
	_, ok, err = c.Get(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists(itemPrefix+"s2"))
}
