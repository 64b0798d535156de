package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

type RateLimitConfig struct {
	LoginAttempts   int
	LoginWindow     time.Duration
	RefreshAttempts int
}

type RateLimitMiddleware struct {
	service inbound.RateLimitService
	cfg     RateLimitConfig
	log     logger.Logger
}

func NewRateLimitMiddleware(service inbound.RateLimitService, cfg RateLimitConfig, log logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{service: service, cfg: cfg, log: log}
}

// Limit throttles the login and refresh endpoints per client IP. A rate
// limiter failure lets the request through; availability wins over
// throttling here.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.service == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientIP := clientIP(r)
		var key string
		var limit int
		window := m.cfg.LoginWindow

		switch {
		case strings.Contains(r.URL.Path, "/login"):
			key = fmt.Sprintf("login:ip:%s", clientIP)
			limit = m.cfg.LoginAttempts
		case strings.Contains(r.URL.Path, "/refresh"):
			key = fmt.Sprintf("refresh:ip:%s", clientIP)
			limit = m.cfg.RefreshAttempts
		default:
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := m.service.Allow(r.Context(), key, limit, window)
		if err != nil {
			m.log.Error(r.Context(), "rate limit check failed", err, map[string]interface{}{"ip": clientIP})
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			m.log.Warn(r.Context(), "rate limit exceeded", map[string]interface{}{
				"ip":   clientIP,
				"path": r.URL.Path,
			})
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			response.Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if parts := strings.Split(xff, ","); len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
