package build

import (
	"context"
	"maps"
	"sync"

	"github.com/fwojciec/ldraw"
	"golang.org/x/sync/singleflight"
)

// Compile-time interface verification.
var _ ldraw.PartCache = (*Cache)(nil)

// Cache is an in-memory part cache for one parse session.
// It is safe for concurrent use by multiple goroutines; concurrent misses
// for the same ID share a single parse.
type Cache struct {
	mu    sync.RWMutex
	parts map[string]*ldraw.Document
	group singleflight.Group
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		parts: make(map[string]*ldraw.Document),
	}
}

// Get returns the document stored for id.
func (c *Cache) Get(id string) (*ldraw.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.parts[id]
	return doc, ok
}

// GetOrParse returns the document stored for id, calling fn on a miss.
func (c *Cache) GetOrParse(ctx context.Context, id string, fn ldraw.ParseFunc) (*ldraw.Document, error) {
	if doc, ok := c.Get(id); ok {
		return doc, nil
	}

	v, err, _ := c.group.Do(id, func() (any, error) {
		// A flight for id may have completed between Get and Do.
		if doc, ok := c.Get(id); ok {
			return doc, nil
		}

		doc, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if existing, ok := c.parts[id]; ok {
			return existing, nil
		}
		c.parts[id] = doc
		return doc, nil
	})
	if err != nil {
		return nil, err
	}

	doc, _ := v.(*ldraw.Document)
	return doc, nil
}

// Len returns the number of stored documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.parts)
}

// Parts returns a copy of the stored documents keyed by part ID.
func (c *Cache) Parts() map[string]*ldraw.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.parts)
}
