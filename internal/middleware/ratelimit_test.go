package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter(1, 3, time.Minute)
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1", now))
	}
	assert.False(t, rl.Allow("10.0.0.1", now))

	// Other clients have their own bucket
	assert.True(t, rl.Allow("10.0.0.2", now))

	// One token refills per second
	assert.True(t, rl.Allow("10.0.0.1", now.Add(time.Second)))
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	now := time.Now()
	rl.Allow("a", now)
	rl.Allow("b", now.Add(30*time.Second))

	rl.Cleanup(now.Add(time.Minute))
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(0.001, 1, time.Minute)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
