package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(t *testing.T, limit int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewLoginRateLimiter(client, limit, window)

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, mr
}

func doLogin(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestLoginRateLimiterAllowsUnderLimit(t *testing.T) {
	router, _ := setupLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLogin(router))
	}
}

func TestLoginRateLimiterBlocksOverLimit(t *testing.T) {
	router, _ := setupLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		doLogin(router)
	}
	assert.Equal(t, http.StatusTooManyRequests, doLogin(router))
}

func TestLoginRateLimiterResetsAfterWindow(t *testing.T) {
	router, mr := setupLimitedRouter(t, 2, time.Minute)

	doLogin(router)
	doLogin(router)
	assert.Equal(t, http.StatusTooManyRequests, doLogin(router))

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, doLogin(router))
}
