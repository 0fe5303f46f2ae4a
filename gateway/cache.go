package gateway

import (
	"encoding/json"
	"sync"
	"time"
)

// queryCache keeps completed fetches warm for a short TTL so repeated page
// loads within a session don't hammer the upstream API. Values are stored
// as JSON so the cache stays ignorant of the result types.
type queryCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	expiry map[string]time.Time
	fills  map[string]*sync.Mutex
	ttl    time.Duration
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		data:   make(map[string][]byte),
		expiry: make(map[string]time.Time),
		fills:  make(map[string]*sync.Mutex),
		ttl:    ttl,
	}
}

// fillLock returns the per-key miss lock. Only misses for the same query
// coalesce; fetches for different queries stay independent.
func (c *queryCache) fillLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	mu, ok := c.fills[key]
	if !ok {
		mu = &sync.Mutex{}
		c.fills[key] = mu
	}
	return mu
}

// get decodes a live entry into out and reports a hit. Expired entries are
// evicted on read.
func (c *queryCache) get(key string, out any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.data[key]
	if !ok {
		return false
	}
	if exp, ok := c.expiry[key]; ok && time.Now().After(exp) {
		delete(c.data, key)
		delete(c.expiry, key)
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *queryCache) set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	c.expiry[key] = time.Now().Add(c.ttl)
}

func (c *queryCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.expiry, key)
}
