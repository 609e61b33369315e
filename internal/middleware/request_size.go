package middleware

import (
	"net/http"
)

// DefaultMaxRequestSize bounds request bodies. Every route is read-only, so the limit is small.
const DefaultMaxRequestSize = 64 * 1024 // 64KB

// RequestSizeLimitMiddleware limits the size of request bodies
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
