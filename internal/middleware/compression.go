package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	MinSize          int      // Minimum response size to compress (bytes)
	CompressionLevel int      // Gzip compression level (1-9, 9 is best compression)
	ContentTypes     []string // Content types to compress
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:          1024,
		CompressionLevel: 6,
		ContentTypes: []string{
			"application/json",
			"text/html",
			"text/plain",
			"text/css",
			"application/javascript",
		},
	}
}

// CompressionMiddleware gzips responses for clients that accept it
type CompressionMiddleware struct {
	config CompressionConfig
	stats  *CompressionStats
	pool   sync.Pool
}

// NewCompressionMiddleware creates a new compression middleware
func NewCompressionMiddleware(config CompressionConfig) *CompressionMiddleware {
	level := config.CompressionLevel
	if level < gzip.BestSpeed || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}

	return &CompressionMiddleware{
		config: config,
		stats:  NewCompressionStats(),
		pool: sync.Pool{
			New: func() interface{} {
				gz, _ := gzip.NewWriterLevel(io.Discard, level)
				return gz
			},
		},
	}
}

// Handler buffers the response and compresses it on the way out when it
// is large enough and of a compressible type. The original writer is
// restored even if a later handler panics, so recovery can still respond.
func (cm *CompressionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !clientAcceptsGzip(c.Request) {
			c.Next()
			return
		}

		original := c.Writer
		gzw := &gzipResponseWriter{ResponseWriter: original, buf: &bytes.Buffer{}}
		c.Writer = gzw

		defer func() {
			c.Writer = original
			cm.finish(gzw)
		}()

		c.Next()
	}
}

func (cm *CompressionMiddleware) finish(gzw *gzipResponseWriter) {
	body := gzw.buf.Bytes()
	if len(body) == 0 {
		return
	}

	w := gzw.ResponseWriter
	header := w.Header()

	if len(body) < cm.config.MinSize || header.Get("Content-Encoding") != "" ||
		!cm.shouldCompress(header.Get("Content-Type")) {
		cm.stats.RecordRequest(int64(len(body)), int64(len(body)), false)
		_, _ = w.Write(body)
		return
	}

	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")

	counter := &countingWriter{w: w}
	gz := cm.getGzipWriter(counter)
	_, _ = gz.Write(body)
	cm.returnGzipWriter(gz)

	cm.stats.RecordRequest(int64(len(body)), counter.n, true)
}

func clientAcceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

func (cm *CompressionMiddleware) shouldCompress(contentType string) bool {
	for _, ct := range cm.config.ContentTypes {
		if strings.Contains(contentType, ct) {
			return true
		}
	}
	return false
}

func (cm *CompressionMiddleware) getGzipWriter(w io.Writer) *gzip.Writer {
	gz := cm.pool.Get().(*gzip.Writer)
	gz.Reset(w)
	return gz
}

// returnGzipWriter flushes the trailer and returns the writer to the pool
func (cm *CompressionMiddleware) returnGzipWriter(gz *gzip.Writer) {
	_ = gz.Close()
	cm.pool.Put(gz)
}

// gzipResponseWriter holds the body until the handler chain is done.
// Status and headers pass straight through to the wrapped writer.
type gzipResponseWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (gzw *gzipResponseWriter) Write(data []byte) (int, error) {
	return gzw.buf.Write(data)
}

func (gzw *gzipResponseWriter) WriteString(s string) (int, error) {
	return gzw.buf.WriteString(s)
}

func (gzw *gzipResponseWriter) Written() bool {
	return gzw.buf.Len() > 0 || gzw.ResponseWriter.Written()
}

func (gzw *gzipResponseWriter) Size() int {
	if gzw.buf.Len() > 0 {
		return gzw.buf.Len()
	}
	return gzw.ResponseWriter.Size()
}

// Flush is a no-op; the body is written once the chain completes
func (gzw *gzipResponseWriter) Flush() {}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CompressionStats tracks compression statistics
type CompressionStats struct {
	TotalRequests      int64
	CompressedRequests int64
	TotalBytes         int64
	CompressedBytes    int64
	mutex              sync.RWMutex
}

// NewCompressionStats creates new compression statistics
func NewCompressionStats() *CompressionStats {
	return &CompressionStats{}
}

// RecordRequest records a request's compression stats
func (cs *CompressionStats) RecordRequest(originalSize, writtenSize int64, compressed bool) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.TotalRequests++
	cs.TotalBytes += originalSize
	cs.CompressedBytes += writtenSize

	if compressed {
		cs.CompressedRequests++
	}
}

// GetStats returns current compression statistics
func (cs *CompressionStats) GetStats() map[string]interface{} {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	ratio := float64(1)
	if cs.TotalBytes > 0 {
		ratio = float64(cs.CompressedBytes) / float64(cs.TotalBytes)
	}

	return map[string]interface{}{
		"total_requests":      cs.TotalRequests,
		"compressed_requests": cs.CompressedRequests,
		"total_bytes":         cs.TotalBytes,
		"written_bytes":       cs.CompressedBytes,
		"compression_ratio":   ratio,
	}
}

// GetStats returns compression statistics
func (cm *CompressionMiddleware) GetStats() map[string]interface{} {
	return cm.stats.GetStats()
}
