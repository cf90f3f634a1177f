package account

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// accountCache maps platform identity to internal account ID with an
// expiring LRU. Only the identity mapping is cached, never the aggregate
// itself, which must always be loaded fresh under the account lock.
type accountCache struct {
	lru *expirable.LRU[string, string]
}

// newAccountCache creates a cache with the given size and entry TTL.
func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func cacheKey(platform, platformID string) string {
	return platform + ":" + platformID
}

// Get returns the cached account ID for a platform identity.
func (c *accountCache) Get(platform, platformID string) (string, bool) {
	return c.lru.Get(cacheKey(platform, platformID))
}

// Set stores the account ID for a platform identity.
func (c *accountCache) Set(platform, platformID, accountID string) {
	c.lru.Add(cacheKey(platform, platformID), accountID)
}

// Invalidate removes a platform identity from the cache.
func (c *accountCache) Invalidate(platform, platformID string) {
	c.lru.Remove(cacheKey(platform, platformID))
}
