// Package requestcache implements the request-id response cache: an
// HTTP-middleware component giving mutating player requests at-most-once
// replay semantics keyed by the client-supplied request-id header. One
// bounded expirable LRU holds the materialized responses; no explicit
// locking beyond what the library already serializes internally.
package requestcache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is the cache entry lifetime.
const DefaultTTL = 15 * time.Minute

// DefaultCapacity is sized generously above any single node's plausible
// concurrent in-flight retry set.
const DefaultCapacity = 10000

// Entry is the materialized response stored under a request-id: enough to
// reproduce the original HTTP reply byte-for-byte.
type Entry struct {
	Status  int
	Headers map[string][]string
	Body    []byte
}

// Cache is the concurrent bounded TTL map behind the middleware. The embedded
// expirable.LRU already guards its own internal locking: two goroutines
// racing Get/Put on the same key never corrupt the table.
type Cache struct {
	lru *expirable.LRU[string, Entry]
}

// New constructs a Cache with the given capacity/ttl. A zero capacity or
// ttl falls back to the package defaults.
func New(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{lru: expirable.NewLRU[string, Entry](capacity, nil, ttl)}
}

// Get returns the cached entry for requestID, if any and not yet expired.
func (c *Cache) Get(requestID string) (Entry, bool) {
	if requestID == "" {
		return Entry{}, false
	}
	return c.lru.Get(requestID)
}

// Store materializes and saves entry under requestID. Storage failures
// (none exist for this in-memory backend, but a future distributed backend
// might) must be logged and ignored by the caller, not surfaced to the
// client.
func (c *Cache) Store(requestID string, entry Entry) {
	if requestID == "" {
		return
	}
	c.lru.Add(requestID, entry)
}
