package middleware

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	"mindscale/internal/cache"
)

// RateLimitMiddleware rejects clients exceeding the per-IP request budget.
type RateLimitMiddleware struct {
	limiter cache.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware.
func NewRateLimitMiddleware(limiter cache.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit wraps a handler with the fixed-window limiter. Redis failures log
// and let the request through; limiting is protection, not a dependency.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := m.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			log.Printf("[RateLimit] check failed, allowing request: %v", err)
			allowed = true
		}
		if !allowed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
