package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ulule/limiter/v3"
)

// RateLimit rejects a client IP once it exceeds the limiter's rate. Store
// failures let the request through.
func RateLimit(l *limiter.Limiter, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lctx, err := l.Get(r.Context(), clientIP(r))
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit store unavailable",
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				retry := max(lctx.Reset-time.Now().Unix(), 1)
				h.Set("Retry-After", strconv.FormatInt(retry, 10))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
