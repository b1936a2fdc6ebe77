// Package requesttime stamps each request with the time it arrived so access
// logs and latency metrics measure from the same instant.
package requesttime

import (
	"net/http"
	"time"

	"docbr/pkg/requestcontext"
)

// Middleware stores the arrival time in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Since returns the time elapsed since the request arrived.
func Since(r *http.Request) time.Duration {
	return time.Since(requestcontext.Now(r.Context()))
}
