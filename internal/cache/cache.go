package cache

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics is the subset of monitoring.Metrics the cache reports to
type Metrics interface {
	IncrementCacheHit()
	IncrementCacheMiss()
}

// MetaKey is the gin context key a handler sets to attach a value to the
// response being cached. The value is handed back to the HitFunc.
const MetaKey = "cache_meta"

// HitFunc runs when a response is served from cache, in place of the handler
type HitFunc func(ctx *gin.Context, meta interface{})

// CacheItem represents a cached item with expiration
type CacheItem struct {
	Data        []byte
	ContentType string
	Meta        interface{}
	ExpiresAt   time.Time
}

// IsExpired checks if the cache item has expired
func (c *CacheItem) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Cache provides thread-safe caching with TTL
type Cache struct {
	mu    sync.RWMutex
	items map[string]*CacheItem
	ttl   time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewCache creates a new cache with the specified TTL
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]*CacheItem),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go c.cleanup()

	return c
}

// cleanup removes expired items periodically
func (c *Cache) cleanup() {
	interval := c.ttl
	if interval <= 0 || interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.removeExpired(now)
		}
	}
}

func (c *Cache) removeExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.items {
		if item.IsExpired(now) {
			delete(c.items, key)
		}
	}
}

// Key creates a consistent key from a request body
func Key(body []byte) string {
	hash := md5.Sum(body)
	return hex.EncodeToString(hash[:])
}

// Get retrieves an item from the cache
func (c *Cache) Get(key string) (*CacheItem, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || item.IsExpired(time.Now()) {
		return nil, false
	}
	return item, true
}

// Set stores an item in the cache
func (c *Cache) Set(key string, data []byte, contentType string) {
	c.SetWithMeta(key, data, contentType, nil)
}

// SetWithMeta stores an item together with a value for the HitFunc
func (c *Cache) SetWithMeta(key string, data []byte, contentType string, meta interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &CacheItem{
		Data:        data,
		ContentType: contentType,
		Meta:        meta,
		ExpiresAt:   time.Now().Add(c.ttl),
	}
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*CacheItem)
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Close stops the cleanup goroutine
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	totalItems := len(c.items)
	expiredItems := 0
	for _, item := range c.items {
		if item.IsExpired(now) {
			expiredItems++
		}
	}

	return map[string]interface{}{
		"total_items":   totalItems,
		"expired_items": expiredItems,
		"active_items":  totalItems - expiredItems,
		"ttl_seconds":   c.ttl.Seconds(),
	}
}

// Middleware caches successful responses to POST requests on path. Scores
// are a pure function of the body, so the body hash is the whole key.
// onHit may be nil.
func (c *Cache) Middleware(metrics Metrics, path string, onHit HitFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost || ctx.Request.URL.Path != path {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.Next()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := Key(body)

		if item, found := c.Get(key); found {
			slog.Debug("Cache hit", "key", key[:8]+"...")
			metrics.IncrementCacheHit()
			ctx.Set("cache_hit", true)
			ctx.Header("X-Cache", "HIT")
			if onHit != nil {
				onHit(ctx, item.Meta)
			}
			ctx.Data(http.StatusOK, item.ContentType, item.Data)
			ctx.Abort()
			return
		}

		metrics.IncrementCacheMiss()
		ctx.Header("X-Cache", "MISS")

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		if wrapper.Status() == http.StatusOK {
			meta, _ := ctx.Get(MetaKey)
			c.SetWithMeta(key, wrapper.body.Bytes(), wrapper.Header().Get("Content-Type"), meta)
		}
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
