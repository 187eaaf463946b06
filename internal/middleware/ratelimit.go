package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter caps requests per user over a fixed window using a Redis
// counter. A nil client disables limiting.
type RateLimiter struct {
	client  *redis.Client
	window  time.Duration
	maxHits int
}

func NewRateLimiter(client *redis.Client, window time.Duration, maxHits int) *RateLimiter {
	return &RateLimiter{client: client, window: window, maxHits: maxHits}
}

// Limit wraps authenticated routes; it keys on the userID placed in the
// request context by RequireAuth.
func (rl *RateLimiter) Limit(name string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.client == nil {
				next.ServeHTTP(w, r)
				return
			}
			userID, _ := r.Context().Value("userID").(int)
			key := fmt.Sprintf("ratelimit:%s:%d", name, userID)

			count, err := rl.client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down never blocks the request path.
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rl.client.Expire(r.Context(), key, rl.window)
			}
			if count > int64(rl.maxHits) {
				http.Error(w, "Too many requests. Please wait a moment.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
