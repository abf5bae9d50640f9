package cache

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type countingMetrics struct {
	hits, misses int
}

func (m *countingMetrics) IncrementCacheHit()  { m.hits++ }
func (m *countingMetrics) IncrementCacheMiss() { m.misses++ }

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute)
	defer c.Close()

	c.Set("k", []byte("v"), "text/plain")
	item, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), item.Data)
	assert.Equal(t, 1, c.Size())

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)

	c.Set("a", nil, "")
	c.Set("b", nil, "")
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Millisecond)
	defer c.Close()

	c.Set("k", []byte("v"), "text/plain")
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.removeExpired(time.Now())
	assert.Equal(t, 0, c.Size())
}

func TestCloseStopsJanitor(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewCache(10 * time.Millisecond)
	c.Set("k", []byte("v"), "text/plain")
	c.Close()
	c.Close()
}

func TestKeyIsStable(t *testing.T) {
	assert.Equal(t, Key([]byte(`{"a":1}`)), Key([]byte(`{"a":1}`)))
	assert.NotEqual(t, Key([]byte(`{"a":1}`)), Key([]byte(`{"a":2}`)))
	assert.Len(t, Key(nil), 32)
}

func TestCacheMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(time.Minute)
	defer c.Close()
	metrics := &countingMetrics{}

	calls := 0
	r := gin.New()
	r.Use(c.Middleware(metrics, "/api/score", nil))
	r.POST("/api/score", func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusOK, gin.H{"score": 50})
	})
	r.POST("/other", func(ctx *gin.Context) {
		calls++
		ctx.Status(http.StatusOK)
	})

	send := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	first := send("/api/score", `{"x":1}`)
	second := send("/api/score", `{"x":1}`)

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)

	send("/other", `{"x":1}`)
	send("/other", `{"x":1}`)
	assert.Equal(t, 3, calls, "other paths are never cached")
}

func TestCacheMiddlewareReplaysMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(time.Minute)
	defer c.Close()

	var hits []interface{}
	r := gin.New()
	r.Use(c.Middleware(&countingMetrics{}, "/api/score", func(ctx *gin.Context, meta interface{}) {
		hits = append(hits, meta)
	}))
	r.POST("/api/score", func(ctx *gin.Context) {
		ctx.Set(MetaKey, "excellent")
		ctx.JSON(http.StatusOK, gin.H{"score": 150})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/score", bytes.NewBufferString(`{"x":1}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, []interface{}{"excellent", "excellent"}, hits)
}
