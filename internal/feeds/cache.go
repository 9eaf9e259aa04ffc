package feeds

import "sync"

// Cache is a session-scoped response cache keyed by feed URL. It exists
// to avoid refetching the same URL within one refresh pass; the owner
// must call Clear when a full reload is wanted. A cache hit returns the
// same items a fresh fetch would have.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]Item
}

// NewCache creates an empty feed cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]Item)}
}

// Get returns the cached items for a URL, if present.
func (c *Cache) Get(url string) ([]Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.entries[url]
	return items, ok
}

// Put stores the items fetched from a URL.
func (c *Cache) Put(url string, items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = items
}

// Clear drops every cached response. Call it whenever a forced reload of
// all feeds is requested.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]Item)
}

// Len returns the number of cached URLs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
