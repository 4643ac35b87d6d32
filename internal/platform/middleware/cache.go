package middleware

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CacheConfig holds HTTP cache and ETag configuration for the catalog
// endpoints. The catalog is immutable after startup, so responses can be
// served from client and shared caches for the configured max-age.
type CacheConfig struct {
	MaxAge       int      // Cache max-age in seconds (default 300 = 5 min)
	IncludePaths []string // Path prefixes the policy applies to
}

// DefaultCacheConfig returns cache settings for the catalog surface.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge:       300,
		IncludePaths: []string{"/api/v1/scores", "/api/v1/categories", "/openapi.json"},
	}
}

// bufferedResponseWriter captures the response body in a buffer so we can
// compute an ETag before flushing to the real writer.
type bufferedResponseWriter struct {
	writer     http.ResponseWriter
	buf        *bytes.Buffer
	statusCode int
}

func newBufferedResponseWriter(w http.ResponseWriter) *bufferedResponseWriter {
	return &bufferedResponseWriter{
		writer:     w,
		buf:        &bytes.Buffer{},
		statusCode: http.StatusOK,
	}
}

// Header returns the underlying writer's header map so that headers set by
// handlers are visible to both the middleware and the final flush.
func (w *bufferedResponseWriter) Header() http.Header {
	return w.writer.Header()
}

// Write captures bytes into the buffer instead of sending them immediately.
func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// WriteHeader captures the status code without writing it to the underlying writer.
func (w *bufferedResponseWriter) WriteHeader(code int) {
	w.statusCode = code
}

// Flush implements http.Flusher (no-op for buffer).
func (w *bufferedResponseWriter) Flush() {}

func (w *bufferedResponseWriter) flushTo() error {
	w.writer.WriteHeader(w.statusCode)
	if w.buf.Len() > 0 {
		_, err := w.writer.Write(w.buf.Bytes())
		return err
	}
	return nil
}

// CatalogCache returns middleware that sets ETag and Cache-Control headers on
// successful GET responses for the catalog paths and answers If-None-Match
// with 304 Not Modified. Calculation endpoints are untouched.
func CatalogCache(config CacheConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				return next(c)
			}
			if !pathIncluded(req.URL.Path, config.IncludePaths) {
				return next(c)
			}

			// Replace the response writer with a buffered version.
			res := c.Response()
			origWriter := res.Writer
			buf := newBufferedResponseWriter(origWriter)
			res.Writer = buf

			err := next(c)
			res.Writer = origWriter

			if err != nil {
				return err
			}
			if buf.statusCode != http.StatusOK {
				return buf.flushTo()
			}

			etag := fmt.Sprintf("%q", fmt.Sprintf("%x", md5.Sum(buf.buf.Bytes())))
			h := res.Header()
			h.Set("ETag", etag)
			h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", config.MaxAge))
			h.Set("Vary", "Accept")

			if match := req.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
				origWriter.WriteHeader(http.StatusNotModified)
				return nil
			}

			return buf.flushTo()
		}
	}
}

func pathIncluded(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// etagMatches compares an If-None-Match header against the computed ETag.
// A wildcard matches anything; otherwise each listed ETag is compared after
// stripping any weak validator prefix.
func etagMatches(header, etag string) bool {
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
