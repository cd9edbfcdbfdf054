package http

import (
	"net"
	"net/http"
	"strconv"

	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/utils"
)

// withRateLimit rejects requests of a client IP that exhausted its token
// bucket with 429 and a Retry-After header. scope labels the metric.
func (h *Handler) withRateLimit(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if h.limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, retryAfter := h.limiter.Allow(ip)
			if !allowed {
				logger.FromRequest(r).Warn().Str("client_ip", ip).Str("scope", scope).Msg("rate limit exceeded")
				h.metrics.RecordRateLimited(scope)

				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr. middleware.RealIP has
// already replaced RemoteAddr with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
