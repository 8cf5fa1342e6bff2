package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Clients idle longer than this are evicted from the registry.
const clientTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientRegistry struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

func newClientRegistry(rps float64, burst int) *clientRegistry {
	return &clientRegistry{
		clients:   make(map[string]*client),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (reg *clientRegistry) limiterFor(ip string) *rate.Limiter {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	// Eviction runs lazily on lookup so the registry needs no
	// background goroutine; at most one sweep per TTL window.
	if now := time.Now(); now.Sub(reg.lastSweep) > clientTTL {
		for addr, c := range reg.clients {
			if now.Sub(c.lastSeen) > clientTTL {
				delete(reg.clients, addr)
			}
		}
		reg.lastSweep = now
	}

	c, ok := reg.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(reg.rps, reg.burst)}
		reg.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// RateLimit returns middleware that limits requests per client IP address.
// rps is the allowed requests per second, burst is the maximum burst size.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	registry := newClientRegistry(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !registry.limiterFor(ip).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
