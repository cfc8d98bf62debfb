package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"linkshortener/internal/domain"
)

// linkOverhead approximates the fixed size of a cached link besides its strings.
const linkOverhead = 64

// LinkCache keeps recently resolved active links. Entries expire after ttl so
// deactivations done outside the service become visible.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, ttl: ttl}, nil
}

// Get returns a copy of the cached link.
func (c *LinkCache) Get(shortCode string) (*domain.Link, bool) {
	val, found := c.cache.Get(shortCode)
	if !found {
		return nil, false
	}
	link := val.(domain.Link)
	return &link, true
}

func (c *LinkCache) Set(link *domain.Link) {
	cost := int64(len(link.ShortCode)+len(link.OriginalURL)) + linkOverhead
	c.cache.SetWithTTL(link.ShortCode, *link, cost, c.ttl)
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

// Noop is used when caching is disabled.
type Noop struct{}

func (Noop) Get(string) (*domain.Link, bool) { return nil, false }

func (Noop) Set(*domain.Link) {}
