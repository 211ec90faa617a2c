package middleware

import (
	"sync"
	"time"

	"financehub/internal/errors"
	"financehub/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorRegistry tracks per-IP limiters and drops entries that have been
// idle for a few minutes.
type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newVisitorRegistry(rps, burst int) *visitorRegistry {
	r := &visitorRegistry{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go r.cleanup()
	return r
}

func (r *visitorRegistry) limiterFor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(r.rps, r.burst)
		r.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (r *visitorRegistry) cleanup() {
	for {
		time.Sleep(time.Minute)

		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

// RateLimiter creates a middleware limiting requests per second per client IP
func RateLimiter(rps, burst int) echo.MiddlewareFunc {
	registry := newVisitorRegistry(rps, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.limiterFor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func clientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return xff
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
