package geolib

import (
	"net"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheSize = 4096
	DefaultCacheTTL  = 10 * time.Minute
)

type cacheEntry struct {
	res Resolution
	err error
}

type cachingResolver struct {
	Resolver

	cache   *expirable.LRU[string, cacheEntry]
	group   singleflight.Group
	metrics Metrics
}

func (c *cachingResolver) Resolve(ip net.IP, mode LookupMode) (Resolution, error) {
	cacheKey := mode.String() + "|" + ip.String()

	if entry, ok := c.cache.Get(cacheKey); ok {
		c.metrics.CacheHit()

		return entry.res, entry.err
	}

	c.metrics.CacheMiss()

	value, _, _ := c.group.Do(cacheKey, func() (interface{}, error) {
		if entry, ok := c.cache.Get(cacheKey); ok {
			return entry, nil
		}

		res, err := c.Resolver.Resolve(ip, mode)
		entry := cacheEntry{res: res, err: err}

		c.cache.Add(cacheKey, entry)

		return entry, nil
	})

	entry := value.(cacheEntry)

	return entry.res, entry.err
}

// NewCachingResolver puts a bounded LRU cache with a TTL in front of a
// resolver. Failed resolutions are cached too, so a burst of lookups
// for the same dead address costs one engine call. Concurrent misses
// for the same address are coalesced into a single underlying lookup.
func NewCachingResolver(resolver Resolver, size int, ttl time.Duration, metrics Metrics) Resolver {
	if size <= 0 {
		size = DefaultCacheSize
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	if metrics == nil {
		metrics = NopMetrics{}
	}

	return &cachingResolver{
		Resolver: resolver,
		cache:    expirable.NewLRU[string, cacheEntry](size, nil, ttl),
		metrics:  metrics,
	}
}
