// Package cache memoizes analysis reports by a content hash of their inputs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/spigell/cv-scorer/internal/textextract"
)

// DefaultTTL is how long an entry stays fresh.
const DefaultTTL = 24 * time.Hour

type entry[V any] struct {
	value   V
	created time.Time
}

// Cache is a TTL map safe for concurrent use. Stored values are treated as
// immutable: callers must not modify a value after Put or after Get.
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

// New returns an empty cache. A non-positive ttl selects DefaultTTL.
func New[V any](ttl time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Get returns the value stored under key and its age. Expired entries are
// swept before the lookup.
func (c *Cache[V]) Get(key string) (V, time.Duration, bool) {
	c.Sweep()

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, 0, false
	}
	return e.value, c.now().Sub(e.created), true
}

// Put stores value under key. The last writer wins.
func (c *Cache[V]) Put(key string, value V) {
	c.Sweep()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, created: c.now()}
}

// Sweep drops every entry older than the TTL and returns how many it removed.
func (c *Cache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.created) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key hashes the analysis inputs. Text is normalized first so that
// whitespace and bullet differences do not split the cache.
func Key(cvText, industry, role string, generic bool, jobDescription string) string {
	flag := "targeted"
	if generic {
		flag = "generic"
	}

	parts := []string{
		textextract.Normalize(cvText),
		strings.ToLower(strings.TrimSpace(industry)),
		strings.ToLower(strings.TrimSpace(role)),
		flag,
		textextract.Normalize(jobDescription),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}
