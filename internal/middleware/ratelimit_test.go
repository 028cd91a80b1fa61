package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewClientLimiter(rps, burst).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestClientLimiterAllowsWithinBurst(t *testing.T) {
	router := setupLimitedRouter(1, 2)

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, recorder.Code)
		}
	}
}

func TestClientLimiterRejectsOverBurst(t *testing.T) {
	router := setupLimitedRouter(0.001, 2)

	var last int
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))
		last = recorder.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected third request to get 429, got %d", last)
	}
}

func TestLimiterForReusesPerClient(t *testing.T) {
	cl := NewClientLimiter(1, 1)

	first := cl.limiterFor("10.0.0.1")
	second := cl.limiterFor("10.0.0.1")
	other := cl.limiterFor("10.0.0.2")

	if first != second {
		t.Error("expected the same limiter instance for one client")
	}
	if first == other {
		t.Error("expected distinct limiters for distinct clients")
	}
}

func TestClientLimiterEvictsStaleClients(t *testing.T) {
	cl := NewClientLimiter(1, 1)
	cl.maxClients = 2

	cl.limiterFor("10.0.0.1")
	cl.limiterFor("10.0.0.2")
	cl.clients["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)

	cl.limiterFor("10.0.0.3")

	if _, exists := cl.clients["10.0.0.1"]; exists {
		t.Error("expected idle client to be evicted")
	}
	if len(cl.clients) > cl.maxClients {
		t.Errorf("map size %d exceeds bound %d", len(cl.clients), cl.maxClients)
	}
}

func TestClientLimiterBoundedWithoutIdleClients(t *testing.T) {
	cl := NewClientLimiter(1, 1)
	cl.maxClients = 2

	cl.limiterFor("10.0.0.1")
	cl.limiterFor("10.0.0.2")
	// Within TTL, but the least recently seen of the two.
	cl.clients["10.0.0.1"].lastSeen = time.Now().Add(-time.Minute)

	cl.limiterFor("10.0.0.3")

	if _, exists := cl.clients["10.0.0.1"]; exists {
		t.Error("expected least recently seen client to be evicted")
	}
	if _, exists := cl.clients["10.0.0.3"]; !exists {
		t.Error("expected new client to be tracked")
	}
	if len(cl.clients) > cl.maxClients {
		t.Errorf("map size %d exceeds bound %d", len(cl.clients), cl.maxClients)
	}
}
