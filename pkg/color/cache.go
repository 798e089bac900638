package color

import (
	gocache "github.com/patrickmn/go-cache"
)

// Cache maps color strings to parsed Colors. Entries never expire and are
// never evicted; the same string always parses to the same Color, so stored
// values are never replaced with anything different. Cache is safe for
// concurrent use.
//
// Inputs come from a bounded design surface. A host that parses untrusted
// strings for a long time should Flush periodically.
type Cache struct {
	items *gocache.Cache
}

// DefaultCache is the process-wide cache used by New. It is created at
// package initialization.
var DefaultCache = NewCache()

// NewCache creates an empty cache without a cleanup janitor.
func NewCache() *Cache {
	return &Cache{items: gocache.New(gocache.NoExpiration, 0)}
}

// Get returns the Color cached for key.
func (c *Cache) Get(key string) (Color, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		return Color{}, false
	}
	col, ok := v.(Color)
	return col, ok
}

// Set stores col under key.
func (c *Cache) Set(key string, col Color) {
	c.items.Set(key, col, gocache.NoExpiration)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.items.Flush()
}
