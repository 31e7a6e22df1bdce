package cache

import (
	"portfolio/model"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type portfolioEntry struct {
	snapshot   *model.PortfolioSnapshot
	insertedAt time.Time
}

// PortfolioCache is a single-slot cache for the whole portfolio snapshot.
// Expiry is checked on read; an expired slot is emptied and stays empty until
// the next Put.
type PortfolioCache struct {
	mu    sync.Mutex
	entry *portfolioEntry
	ttl   time.Duration
	clock clockwork.Clock
}

func NewPortfolioCache(ttl time.Duration, clock clockwork.Clock) *PortfolioCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PortfolioCache{ttl: ttl, clock: clock}
}

// Get returns the snapshot while its age is at most the ttl.
func (c *PortfolioCache) Get() (*model.PortfolioSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return nil, false
	}

	if c.clock.Since(c.entry.insertedAt) > c.ttl {
		c.entry = nil
		return nil, false
	}

	return c.entry.snapshot, true
}

func (c *PortfolioCache) Put(snapshot *model.PortfolioSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &portfolioEntry{
		snapshot:   snapshot,
		insertedAt: c.clock.Now(),
	}
}

func (c *PortfolioCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil
}
