package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(200, gin.H{"total_reports": 0})
	})
	return r
}

func getFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/stats", nil)
	req.RemoteAddr = ip + ":51234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_UnderBudget(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(5, 10))

	if w := getFrom(router, "203.0.113.7"); w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}
}

func TestRateLimit_BurstExhausted(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(1, 2))

	// Hammer one IP past its burst; the tail must be throttled.
	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		last = getFrom(router, "203.0.113.8")
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, expected %d once the burst is spent", last.Code, http.StatusTooManyRequests)
	}
	if !strings.Contains(last.Body.String(), "too many requests") {
		t.Errorf("throttled body should explain itself, got %s", last.Body.String())
	}
}

func TestRateLimit_BudgetIsPerIP(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(1, 1))

	// One install burning its budget must not throttle a different IP.
	if w := getFrom(router, "203.0.113.9"); w.Code != http.StatusOK {
		t.Fatalf("first IP: status = %d, expected %d", w.Code, http.StatusOK)
	}
	if w := getFrom(router, "203.0.113.9"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first IP second hit: status = %d, expected %d", w.Code, http.StatusTooManyRequests)
	}
	if w := getFrom(router, "198.51.100.4"); w.Code != http.StatusOK {
		t.Errorf("second IP: status = %d, expected %d", w.Code, http.StatusOK)
	}
}
