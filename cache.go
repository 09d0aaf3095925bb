package docsite

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/eringen/docsite/views"
)

// DocCache is an in-memory cache of loaded docs with TTL.
type DocCache struct {
	mu      sync.RWMutex
	docs    []views.Doc
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	load    func() ([]views.Doc, error)
}

// NewDocCache creates a DocCache filled by load.
func NewDocCache(load func() ([]views.Doc, error), ttl time.Duration) *DocCache {
	return &DocCache{load: load, ttl: ttl}
}

func (c *DocCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *DocCache) Invalidate() {
	c.mu.Lock()
	c.docs = nil
	c.loaded = false
	c.mu.Unlock()
}

// ensureLoaded returns cached docs after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *DocCache) ensureLoaded() ([]views.Doc, error) {
	c.mu.RLock()
	if c.valid() {
		docs := c.docs
		c.mu.RUnlock()
		return docs, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.docs, nil
	}
	docs, err := c.load()
	if err != nil {
		return nil, err
	}
	c.docs = docs
	c.loaded = true
	c.fetched = time.Now()
	return c.docs, nil
}

// ListDocs returns all docs in sidebar order.
func (c *DocCache) ListDocs() ([]views.Doc, error) {
	return c.ensureLoaded()
}

// GetDoc returns the doc with the given slug.
func (c *DocCache) GetDoc(slug string) (views.Doc, error) {
	docs, err := c.ensureLoaded()
	if err != nil {
		return views.Doc{}, err
	}
	doc, ok := lo.Find(docs, func(d views.Doc) bool { return d.Slug == slug })
	if !ok {
		return views.Doc{}, ErrDocNotFound
	}
	return doc, nil
}
