package services

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/SscSPs/usd_totals/internal/core/conversion"
	"github.com/SscSPs/usd_totals/internal/core/domain"
	gocache "github.com/patrickmn/go-cache"
)

// ChainCache remembers resolved chains of the stored rate table per currency.
// Entries are keyed by a table version so that a resolver built before a rate
// write can never publish chains into the newer version.
type ChainCache struct {
	cache   *gocache.Cache
	version atomic.Uint64
}

// NewChainCache creates a cache whose entries expire after ttl.
// A non-positive ttl keeps entries until the next invalidation.
func NewChainCache(ttl time.Duration) *ChainCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := 2 * ttl
	if ttl == gocache.NoExpiration {
		cleanup = 0
	}
	return &ChainCache{cache: gocache.New(ttl, cleanup)}
}

// Invalidate drops every cached chain. It must be called after the rate table changes.
func (c *ChainCache) Invalidate() {
	c.version.Add(1)
	c.cache.Flush()
}

// Snapshot returns the current table version. Take it before reading the rate table.
func (c *ChainCache) Snapshot() uint64 {
	return c.version.Load()
}

// Len returns the number of cached chains, expired ones included until cleanup.
func (c *ChainCache) Len() int {
	return c.cache.ItemCount()
}

// Wrap returns a resolver that serves chains from the cache for the given table
// version and falls back to inner on a miss. Only successful resolutions are kept.
func (c *ChainCache) Wrap(version uint64, inner conversion.PathResolver) conversion.PathResolver {
	return &cachedResolver{cache: c, version: version, inner: inner}
}

type cachedResolver struct {
	cache   *ChainCache
	version uint64
	inner   conversion.PathResolver
}

func (r *cachedResolver) ConversionsToUSD(from string) (domain.ConversionChain, error) {
	key := strconv.FormatUint(r.version, 10) + ":" + from
	if cached, found := r.cache.cache.Get(key); found {
		return cached.(domain.ConversionChain), nil
	}

	chain, err := r.inner.ConversionsToUSD(from)
	if err != nil {
		return nil, err
	}
	if r.cache.version.Load() == r.version {
		r.cache.cache.SetDefault(key, chain)
	}
	return chain, nil
}
