package landing

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedPage is one rendered response body.
type cachedPage struct {
	body    []byte
	etag    string
	fetched time.Time
}

// PageCache memoizes rendered responses by key with a TTL. Every entry also
// carries a strong ETag derived from its body.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	gen   uint64 // bumped by Invalidate; renders started earlier are not stored
	ttl   time.Duration
	group singleflight.Group
}

// NewPageCache creates an empty PageCache whose entries live for ttl.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{pages: make(map[string]cachedPage), ttl: ttl}
}

func (c *PageCache) valid(p cachedPage, ok bool) bool {
	return ok && time.Since(p.fetched) < c.ttl
}

// Invalidate clears every entry so the next read renders again.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]cachedPage)
	c.gen++
	c.mu.Unlock()
}

// Get returns the cached body and ETag for key, calling render on a miss.
// Concurrent misses for one key share a single render, which runs without
// holding the cache lock. Failed renders are not cached.
func (c *PageCache) Get(key string, render func() ([]byte, error)) ([]byte, string, error) {
	if p, ok := c.lookup(key); ok {
		return p.body, p.etag, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		p, ok, gen := c.lookupGen(key)
		if ok {
			return p, nil
		}
		body, err := render()
		if err != nil {
			return nil, err
		}
		p = cachedPage{body: body, etag: etagFor(body), fetched: time.Now()}
		c.mu.Lock()
		if c.gen == gen {
			c.pages[key] = p
		}
		c.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, "", err
	}
	p := v.(cachedPage)
	return p.body, p.etag, nil
}

func (c *PageCache) lookup(key string) (cachedPage, bool) {
	p, ok, _ := c.lookupGen(key)
	return p, ok
}

func (c *PageCache) lookupGen(key string) (cachedPage, bool, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[key]
	return p, c.valid(p, ok), c.gen
}

// Len reports the number of entries, expired or not.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

func etagFor(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
