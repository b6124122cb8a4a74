package requestcache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/public-forge/go-logger"
)

// HeaderRequestID is the header a client submits to correlate a retried
// mutating call with the response it already received.
const HeaderRequestID = "request-id"

// HeaderCacheStatus echoes back "enable" when the response the client
// received came out of the cache.
const HeaderCacheStatus = "cache-status"

// cacheableKey is the gin context key a handler sets to mark its response
// cacheable, read by Middleware after the handler returns. Cacheability is
// decided from the typed response wrapper (dispatcher.Response.Cache), not
// from a wire header; the flag never leaves the process.
const cacheableKey = "slot.cacheable"

// MarkCacheable flags the in-flight response as eligible for cache storage,
// called by a handler once it knows the dispatcher produced a
// cache-worthy (mutating, successful) response.
func MarkCacheable(c *gin.Context) {
	c.Set(cacheableKey, true)
}

// bufferingWriter captures status/headers/body so Middleware can decide,
// after the handler has run, whether to materialize them into the cache.
type bufferingWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (w *bufferingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Middleware implements the replay pipeline for GET/POST requests carrying a
// request-id header:
//  1. a cache hit serves the stored (status, headers, body) verbatim and
//     skips the rest of the pipeline;
//  2. otherwise the pipeline runs, and if the handler flagged the response
//     cacheable via MarkCacheable, it is materialized and stored.
func Middleware(cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			c.Next()
			return
		}

		if entry, ok := cache.Get(requestID); ok {
			for k, vs := range entry.Headers {
				for _, v := range vs {
					c.Writer.Header().Add(k, v)
				}
			}
			c.Writer.Header().Set(HeaderCacheStatus, "enable")
			c.Writer.WriteHeader(entry.Status)
			_, _ = c.Writer.Write(entry.Body)
			c.Abort()
			return
		}

		bw := &bufferingWriter{ResponseWriter: c.Writer, status: http.StatusOK}
		c.Writer = bw
		c.Next()

		cacheable, _ := c.Get(cacheableKey)
		if ok, _ := cacheable.(bool); !ok {
			return
		}

		headers := make(map[string][]string, len(bw.Header()))
		for k, vs := range bw.Header() {
			cp := make([]string, len(vs))
			copy(cp, vs)
			headers[k] = cp
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					log.FromContext(c.Request.Context()).Error(r)
				}
			}()
			cache.Store(requestID, Entry{Status: bw.status, Headers: headers, Body: bw.body.Bytes()})
		}()
	}
}
