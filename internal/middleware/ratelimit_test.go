package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst).Handler())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(1, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1"))
	}
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	r := newLimitedRouter(0.001, 1)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.2"))
}

func TestRateLimiterIsPerClient(t *testing.T) {
	r := newLimitedRouter(0.001, 1)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.3"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.3"))
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.4"))
}
