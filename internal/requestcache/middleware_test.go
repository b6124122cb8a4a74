package requestcache

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newCachedRouter wires a router whose /handle endpoint marks its response
// cacheable and counts how often the real handler actually executed.
func newCachedRouter(cache *Cache, executed *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(cache))
	router.POST("/handle", func(c *gin.Context) {
		*executed++
		MarkCacheable(c)
		c.Header("request-id", "next-nonce")
		c.JSON(http.StatusOK, gin.H{"type": "SpinData", "win": 125})
	})
	return router
}

func post(router *gin.Engine, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/handle", strings.NewReader(`{}`))
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ReplayServesIdenticalResponse(t *testing.T) {
	// Arrange
	executed := 0
	cache := New(16, time.Minute)
	router := newCachedRouter(cache, &executed)

	// Act
	first := post(router, "req-1")
	second := post(router, "req-1")

	// Assert: the handler ran once, the replay is byte-identical and
	// flagged as served from cache.
	assert.Equal(t, 1, executed)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, "next-nonce", second.Header().Get("request-id"))
	assert.Equal(t, "enable", second.Header().Get(HeaderCacheStatus))
	assert.Empty(t, first.Header().Get(HeaderCacheStatus))
}

func TestMiddleware_DistinctRequestIDsBothExecute(t *testing.T) {
	// Arrange
	executed := 0
	cache := New(16, time.Minute)
	router := newCachedRouter(cache, &executed)

	// Act
	post(router, "req-1")
	post(router, "req-2")

	// Assert
	assert.Equal(t, 2, executed)
}

func TestMiddleware_MissingRequestIDBypassesCache(t *testing.T) {
	// Arrange
	executed := 0
	cache := New(16, time.Minute)
	router := newCachedRouter(cache, &executed)

	// Act
	post(router, "")
	post(router, "")

	// Assert: nothing was cached without a key to cache under.
	assert.Equal(t, 2, executed)
}

func TestMiddleware_UncacheableResponseIsNotStored(t *testing.T) {
	// Arrange: an error-shaped handler that never marks the response.
	gin.SetMode(gin.TestMode)
	executed := 0
	cache := New(16, time.Minute)
	router := gin.New()
	router.Use(Middleware(cache))
	router.POST("/handle", func(c *gin.Context) {
		executed++
		c.JSON(http.StatusOK, gin.H{"type": "Error", "error": "Wrong request id!"})
	})

	// Act
	post(router, "req-err")
	post(router, "req-err")

	// Assert: error responses replay through the pipeline, not the cache.
	assert.Equal(t, 2, executed)
	_, cached := cache.Get("req-err")
	assert.False(t, cached)
}

func TestMiddleware_EntryExpiresAfterTTL(t *testing.T) {
	// Arrange
	executed := 0
	cache := New(16, 30*time.Millisecond)
	router := newCachedRouter(cache, &executed)

	// Act
	post(router, "req-ttl")
	time.Sleep(60 * time.Millisecond)
	post(router, "req-ttl")

	// Assert
	assert.Equal(t, 2, executed)
}
