// Package ratelimit is a token-bucket gate for HTTP handlers: a fixed
// capacity of tokens refilled at a steady rate, one token per request.
package ratelimit

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

type Bucket struct {
	limiter *rate.Limiter
}

// NewBucket creates a bucket holding at most capacity tokens, refilled at
// refillRate tokens per second.
func NewBucket(capacity int, refillRate float64) *Bucket {
	return &Bucket{
		limiter: rate.NewLimiter(rate.Limit(refillRate), capacity),
	}
}

// TakeToken consumes one token if available.
func (b *Bucket) TakeToken() bool {
	return b.limiter.Allow()
}

// Middleware rejects requests with 429 once the bucket is empty.
func (b *Bucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !b.TakeToken() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Rate Limit Exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
