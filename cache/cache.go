package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var RateLimiterCache = cache.New(10*time.Minute, 20*time.Minute)

// NewMetricsCache holds successful per-ticker metrics lookups. P/E moves slowly
// compared with price, so it outlives the portfolio snapshot.
func NewMetricsCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}
