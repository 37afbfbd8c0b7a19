package cache

import (
	"sync"
	"time"

	"github.com/diwise/swapi-aggregator/pkg/swapi/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Cache interface {
	Get(key string) (types.Payload, bool)
	Set(key string, payload types.Payload)
	Clear()
}

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swapi_cache_hits_total",
		Help: "The number of cache lookups that found a live entry",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swapi_cache_misses_total",
		Help: "The number of cache lookups that found no live entry",
	})
	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swapi_cache_evictions_total",
		Help: "The number of expired entries removed on lookup",
	})
)

type entry struct {
	expiresAt time.Time
	payload   types.Payload
}

type ttlCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	store map[string]entry
}

// WithClock replaces the time source used to compute and check expiry.
func WithClock(now func() time.Time) func(*ttlCache) {
	return func(c *ttlCache) {
		c.now = now
	}
}

// New returns an in-memory cache where each entry lives for ttl after it was
// set. A ttl of zero or less disables expiry.
func New(ttl time.Duration, options ...func(*ttlCache)) Cache {
	c := &ttlCache{
		ttl:   ttl,
		now:   time.Now,
		store: make(map[string]entry),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *ttlCache) Get(key string) (types.Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store[key]
	if !ok {
		cacheMisses.Inc()
		return nil, false
	}

	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.store, key)
		cacheEvictions.Inc()
		cacheMisses.Inc()
		return nil, false
	}

	cacheHits.Inc()
	return e.payload, true
}

func (c *ttlCache) Set(key string, payload types.Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{payload: payload}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}

	c.store[key] = e
}

func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.store)
}
