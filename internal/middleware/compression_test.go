package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(cm *CompressionMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}))
	r.Use(cm.Handler())
	r.GET("/large", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Repeat("홍연 ", 1000))
	})
	r.GET("/small", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/binary", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/png", make([]byte, 4096))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func get(r *gin.Engine, path string, acceptGzip bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	if acceptGzip {
		req.Header.Set("Accept-Encoding", "gzip, deflate")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCompressionLargeResponse(t *testing.T) {
	cm := NewCompressionMiddleware(DefaultCompressionConfig())
	r := setupRouter(cm)

	w := get(r, "/large", true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Header().Get("Vary"), "Accept-Encoding")

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("홍연 ", 1000), string(plain))

	stats := cm.GetStats()
	assert.Equal(t, int64(1), stats["compressed_requests"])
	assert.Less(t, stats["compression_ratio"].(float64), 0.5)
}

func TestCompressionSkipped(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		acceptGzip bool
	}{
		{"client without gzip", "/large", false},
		{"below min size", "/small", true},
		{"incompressible type", "/binary", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewCompressionMiddleware(DefaultCompressionConfig())
			r := setupRouter(cm)

			w := get(r, tt.path, tt.acceptGzip)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("Content-Encoding"))
			assert.NotZero(t, w.Body.Len())
			assert.Equal(t, int64(0), cm.GetStats()["compressed_requests"])
		})
	}
}

func TestCompressionPanicStillResponds(t *testing.T) {
	r := setupRouter(NewCompressionMiddleware(DefaultCompressionConfig()))

	w := get(r, "/panic", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal"}`, w.Body.String())
}

func TestCompressionInvalidLevelFallsBack(t *testing.T) {
	cfg := DefaultCompressionConfig()
	cfg.CompressionLevel = 42
	r := setupRouter(NewCompressionMiddleware(cfg))

	w := get(r, "/large", true)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}
