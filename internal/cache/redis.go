// Package cache holds Redis-backed caches for hot read paths.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/entitlement"
)

// ErrCacheMiss is returned when a key has no cached entry.
var ErrCacheMiss = entitlement.ErrCacheMiss

// negativeEntry marks a domain known to have no organization.
const negativeEntry = "null"

// OrganizationCache caches organization-by-domain lookups in Redis.
type OrganizationCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ entitlement.OrganizationCache = (*OrganizationCache)(nil)

// NewOrganizationCache creates a cache with the given base TTL. Entries get
// up to five minutes of jitter so they do not expire together.
func NewOrganizationCache(client *redis.Client, baseTTL time.Duration) *OrganizationCache {
	if baseTTL <= 0 {
		baseTTL = 10 * time.Minute
	}
	return &OrganizationCache{client: client, baseTTL: baseTTL}
}

// NewClient parses a redis:// URL and verifies connectivity.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// GetOrganization returns the cached organization for orgDomain. A nil
// organization with a nil error is a cached negative lookup.
func (c *OrganizationCache) GetOrganization(ctx context.Context, orgDomain string) (*domain.Organization, error) {
	data, err := c.client.Get(ctx, cacheKey(orgDomain)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	if string(data) == negativeEntry {
		return nil, nil
	}

	var org domain.Organization
	if err := json.Unmarshal(data, &org); err != nil {
		return nil, fmt.Errorf("unmarshal organization failed: %w", err)
	}
	return &org, nil
}

// SetOrganization stores org for orgDomain. A nil org is stored as a
// negative entry.
func (c *OrganizationCache) SetOrganization(ctx context.Context, orgDomain string, org *domain.Organization) error {
	value := []byte(negativeEntry)
	if org != nil {
		data, err := json.Marshal(org)
		if err != nil {
			return fmt.Errorf("marshal organization failed: %w", err)
		}
		value = data
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := c.client.Set(ctx, cacheKey(orgDomain), value, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// InvalidateOrganization removes any entry for orgDomain.
func (c *OrganizationCache) InvalidateOrganization(ctx context.Context, orgDomain string) error {
	if err := c.client.Del(ctx, cacheKey(orgDomain)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(orgDomain string) string {
	return fmt.Sprintf("org:domain:%s", orgDomain)
}
