package security

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/hongyeon/internal/errors"
	"github.com/gin-gonic/gin"
)

// MaxNameLength bounds display names, in runes
const MaxNameLength = 40

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// BodyLimitMiddleware caps request bodies at maxBytes. Reads past the
// limit fail with *http.MaxBytesError, which the error handler turns
// into a 413.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			errors.Abort(c, errors.NewPayloadTooLargeError(maxBytes))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// RequestTimeoutMiddleware bounds the request context by d
func RequestTimeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Timeout", strconv.Itoa(int(d.Seconds())))

		c.Next()
	}
}

// RequireJSON rejects requests whose body is not declared as JSON
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(strings.ToLower(contentType), "application/json") {
			errors.Abort(c, errors.NewUnsupportedMediaTypeError(contentType))
			return
		}
		c.Next()
	}
}

// SanitizeName strips markup and control characters from a display
// name, collapses whitespace and truncates it to MaxNameLength runes.
func SanitizeName(name string) string {
	if !utf8.ValidString(name) {
		name = strings.ToValidUTF8(name, "")
	}

	name = htmlTagPattern.ReplaceAllString(name, "")
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, name)
	name = strings.TrimSpace(whitespacePattern.ReplaceAllString(name, " "))

	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}
