package cache

import (
	"sync"
	"time"
)

// TTLValue caches a single value with an expiry. The status API serves the
// same computed snapshot to every caller, so one cell is all the cache the
// module needs.
type TTLValue[T any] struct {
	mu  sync.RWMutex
	v   T
	exp time.Time
	set bool
}

func NewTTLValue[T any]() *TTLValue[T] {
	return &TTLValue[T]{}
}

// Get returns the cached value if present and not expired.
func (c *TTLValue[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set || (!c.exp.IsZero() && time.Now().After(c.exp)) {
		var zero T
		return zero, false
	}
	return c.v, true
}

// Put stores a value. A non-positive ttl keeps it until the next Put.
func (c *TTLValue[T]) Put(v T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
	c.set = true
	if ttl > 0 {
		c.exp = time.Now().Add(ttl)
	} else {
		c.exp = time.Time{}
	}
}
