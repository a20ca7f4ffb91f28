package cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const DefaultTTL = 5 * time.Minute

// ── Catalog snapshot cache ──────────────────────────────────────────────────
// Holds the active products and categories the storefront filters in memory.
// Every browse request reads from here; the database is only hit on a miss.

type Snapshot struct {
	Products   []models.Product
	Categories []models.Category
	FetchedAt  time.Time
}

type SnapshotCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	entry *Snapshot
}

func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{ttl: ttl, now: time.Now}
}

// WithClock swaps the clock used for expiry; tests use it.
func (c *SnapshotCache) WithClock(now func() time.Time) *SnapshotCache {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

func (c *SnapshotCache) Get() (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.now().Sub(c.entry.FetchedAt) < c.ttl {
		return c.entry, true
	}
	return nil, false
}

func (c *SnapshotCache) Set(products []models.Product, categories []models.Category) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &Snapshot{
		Products:   products,
		Categories: categories,
		FetchedAt:  c.now(),
	}
	return c.entry
}

// ── Invalidate (call after the catalog is re-seeded or edited) ──────────────

func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
