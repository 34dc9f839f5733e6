package life

import "sync"

// Cache interns coordinate values and remembers the generation each value
// was last referenced in. The map key doubles as the canonical instance;
// the tracked generation drives Flush. A single Cache may be shared by
// concurrent advances, so every access holds the lock.
type Cache struct {
	mu      sync.Mutex
	entries map[Coord]int
	gen     int
}

// NewCache returns an empty coordinate cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Coord]int)}
}

// Intern returns the canonical coordinate for (x, y), creating an entry if
// the value has not been seen, and stamps it with gen.
func (c *Cache) Intern(x, y, gen int) Coord {
	key := Coord{X: x, Y: y}
	c.mu.Lock()
	c.entries[key] = gen
	if gen > c.gen {
		c.gen = gen
	}
	c.mu.Unlock()
	return key
}

// Generation returns the highest generation index any Intern call carried.
func (c *Cache) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Len returns the number of cached coordinate values.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Flush evicts every entry last referenced at or before the current
// generation minus retain. When retain exceeds the elapsed generations
// nothing is eligible yet and the call is a no-op. The caller must pick
// retain large enough to cover every world it still holds; the cache does
// no liveness analysis of its own. Returns the number of evicted entries.
func (c *Cache) Flush(retain int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if retain < 0 || retain > c.gen {
		return 0
	}
	cutoff := c.gen - retain
	removed := 0
	for key, gen := range c.entries {
		if gen <= cutoff {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
