package middleware

import (
	"net/http"

	"valet-backend/pkg/common"
	"valet-backend/pkg/throttle"
)

// Throttle rejects requests over the per-client budget with a 429. Clients
// are keyed by remote address; behind a proxy chi's RealIP middleware fixes
// that up first.
func Throttle(limiter *throttle.Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.RemoteAddr) {
				common.RespondError(w, http.StatusTooManyRequests, "Too many requests, master. Do slow down.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
