package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics records every request under its matched ServeMux pattern. It must
// wrap the mux directly so the pattern set during routing is visible here.
func Metrics(observer httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
