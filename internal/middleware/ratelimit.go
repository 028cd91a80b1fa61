package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// maxTrackedClients bounds the limiter map so a scan of spoofed IPs
	// cannot grow it without limit.
	maxTrackedClients = 10000

	// clientTTL is how long an idle client's limiter is kept.
	clientTTL = 10 * time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter throttles requests per client IP with a token bucket.
// Idle clients are evicted once the map reaches its bound.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientEntry
	rps     rate.Limit
	burst   int

	maxClients int
	ttl        time.Duration
}

func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		clients:    make(map[string]*clientEntry),
		rps:        rate.Limit(rps),
		burst:      burst,
		maxClients: maxTrackedClients,
		ttl:        clientTTL,
	}
}

func (cl *ClientLimiter) limiterFor(clientIP string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	entry, exists := cl.clients[clientIP]
	if !exists {
		if len(cl.clients) >= cl.maxClients {
			cl.evictLocked(now)
		}
		entry = &clientEntry{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.clients[clientIP] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// evictLocked drops every client idle longer than the TTL; if none
// qualify it drops the least recently seen one so the map stays bounded.
// Caller holds the mutex.
func (cl *ClientLimiter) evictLocked(now time.Time) {
	var oldestIP string
	var oldestSeen time.Time

	for ip, entry := range cl.clients {
		if now.Sub(entry.lastSeen) > cl.ttl {
			delete(cl.clients, ip)
			continue
		}
		if oldestIP == "" || entry.lastSeen.Before(oldestSeen) {
			oldestIP, oldestSeen = ip, entry.lastSeen
		}
	}

	if len(cl.clients) >= cl.maxClients && oldestIP != "" {
		delete(cl.clients, oldestIP)
	}
}

// Middleware rejects requests over the per-client budget with 429.
func (cl *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
