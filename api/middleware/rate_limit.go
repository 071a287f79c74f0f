package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aerolinehq/ndc-backend/api/responses"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
)

type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit enforces a per-client-IP fixed window on the wrapped routes.
// A nil limiter or non-positive policy disables the middleware.
func RateLimit(name string, limiter rateLimiter, limit int64, window time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil || limit <= 0 || window <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			scope := name + ":" + ip
			allowed, count, err := limiter.FixedWindowAllow(ctx, scope, limit, window)
			if err != nil {
				// Fail open. A redis blip must not take the login surface down.
				if logg != nil {
					logg.Warn(logg.WithFields(ctx, map[string]any{"scope": scope}), "rate_limit.store_error")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if logg != nil {
					fields := map[string]any{
						"scope":          scope,
						"attempts":       count,
						"limit":          limit,
						"window_seconds": int(window.Seconds()),
					}
					logg.Warn(logg.WithFields(ctx, fields), "rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
