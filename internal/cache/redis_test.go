package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/kestrel/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a cache bound to it
func setupTestRedis(t *testing.T) (*OrganizationCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewOrganizationCache(client, time.Minute), mr
}

func TestOrganizationCache_RoundTrip(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	org := &domain.Organization{
		ID:                uuid.New(),
		Name:              "Infosys",
		Domain:            "infosys.com",
		AllowedCategories: []string{"mac", "ipad"},
	}

	require.NoError(t, c.SetOrganization(ctx, "infosys.com", org))

	got, err := c.GetOrganization(ctx, "infosys.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, org.ID, got.ID)
	assert.Equal(t, []string{"mac", "ipad"}, got.AllowedCategories)
}

func TestOrganizationCache_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)

	got, err := c.GetOrganization(context.Background(), "nobody.com")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestOrganizationCache_NegativeEntry(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetOrganization(ctx, "nobody.com", nil))
	assert.Equal(t, negativeEntry, mustGet(t, mr, cacheKey("nobody.com")))

	got, err := c.GetOrganization(ctx, "nobody.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrganizationCache_TTLWithJitter(t *testing.T) {
	c, mr := setupTestRedis(t)

	require.NoError(t, c.SetOrganization(context.Background(), "tcs.com", &domain.Organization{ID: uuid.New()}))

	ttl := mr.TTL(cacheKey("tcs.com"))
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.Less(t, ttl, 6*time.Minute)
}

func TestOrganizationCache_Invalidate(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.SetOrganization(ctx, "tcs.com", &domain.Organization{ID: uuid.New()}))
	require.NoError(t, c.InvalidateOrganization(ctx, "tcs.com"))
	assert.False(t, mr.Exists(cacheKey("tcs.com")))

	_, err := c.GetOrganization(ctx, "tcs.com")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestOrganizationCache_InvalidJSON(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(cacheKey("broken.com"), "{not json"))

	_, err := c.GetOrganization(context.Background(), "broken.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}

func TestRateLimiter_Window(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewRateLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := range 2 {
		allowed, err := limiter.Allow(ctx, "POST /sessions|10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i)
	}

	allowed, err := limiter.Allow(ctx, "POST /sessions|10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other clients have their own window.
	allowed, err = limiter.Allow(ctx, "POST /sessions|10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(time.Minute + time.Second)
	allowed, err = limiter.Allow(ctx, "POST /sessions|10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	_, err := NewRateLimiter(client, 2, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
}
