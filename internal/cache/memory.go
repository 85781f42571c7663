package cache

import (
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL and
// cleanup interval.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a cached value.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// FileReader reads files through the cache. Read errors are not cached, so
// a support file created mid-run is picked up on the next miss.
type FileReader struct {
	cache Cache
	ttl   time.Duration
}

// NewFileReader wraps a cache as a read-through file reader.
func NewFileReader(c Cache, ttl time.Duration) *FileReader {
	return &FileReader{cache: c, ttl: ttl}
}

// ReadFile returns the cached contents of path, reading from disk on miss.
func (r *FileReader) ReadFile(path string) ([]byte, error) {
	key := Key(path)
	if data, ok := r.cache.Get(key); ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, data, r.ttl)
	return data, nil
}
