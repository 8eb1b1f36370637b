package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sessionguard/sessionguard/pkg/clientip"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// KeyByClientIP keys the limit on the resolved client address, so one
// origin cannot exhaust the budget of everyone behind the same endpoint.
func KeyByClientIP(r *http.Request) string {
	return clientip.GetIP(r)
}

// Middleware enforces the limiter per request key. Denied requests get a
// 429 JSON body plus the standard X-RateLimit-* and Retry-After headers.
func Middleware(limiter Limiter, keyFunc KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), keyFunc(r))
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retryAfter := int(result.RetryAfter().Seconds()); retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"status":  "error",
					"message": "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
