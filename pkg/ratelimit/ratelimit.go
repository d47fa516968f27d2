package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config defines rate limiting parameters
type Config struct {
	Requests int                            // Max requests per window
	Window   time.Duration                  // Time window duration
	KeyFunc  func(r *http.Request) []string // Function to generate rate limit keys
	SkipFunc func(r *http.Request) bool     // Function to skip rate limiting
}

// Limiter provides Redis-backed fixed-window rate limiting. A nil client
// turns the middleware into a pass-through, so the service runs without
// Redis in development.
type Limiter struct {
	client *redis.Client
	config Config
}

func New(client *redis.Client, config Config) *Limiter {
	return &Limiter{
		client: client,
		config: config,
	}
}

// Middleware returns the rate limiting middleware
func (l *Limiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l.client == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.config.SkipFunc != nil && l.config.SkipFunc(r) {
				next.ServeHTTP(w, r)
				return
			}

			for _, key := range l.config.KeyFunc(r) {
				if !l.allow(r.Context(), key) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusTooManyRequests)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "Too many requests. Try again later.",
						"code":  "RATE_LIMIT_EXCEEDED",
					})
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allow checks if a request is within rate limits
func (l *Limiter) allow(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Hash the key for privacy
	hasher := sha256.New()
	hasher.Write([]byte(key))
	hashedKey := fmt.Sprintf("ratelimit:%x", hasher.Sum(nil))

	count, err := l.client.Incr(ctx, hashedKey).Result()
	if err != nil {
		// On Redis error, allow the request (fail open)
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, hashedKey, l.config.Window)
	}

	return count <= int64(l.config.Requests)
}

// IPKeyFunc generates rate limit keys from the client IP
func IPKeyFunc(r *http.Request) []string {
	if ip := clientIP(r); ip != "" {
		return []string{"ip:" + ip}
	}
	return nil
}

// clientIP extracts the real client IP from the request
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first IP if there are multiple
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
