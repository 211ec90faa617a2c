package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsBurstThenLimits(t *testing.T) {
	e := echo.New()
	middleware := RateLimiter(2, 4)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.2:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The limiter answers through SendError and returns nil.
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_IndependentPerIP(t *testing.T) {
	e := echo.New()
	middleware := RateLimiter(1, 2)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	ips := []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"}
	for _, ip := range ips {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = ip
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, clientIP(c))
		})
	}
}

func TestVisitorRegistry_DropsIdleEntries(t *testing.T) {
	registry := newVisitorRegistry(5, 10)

	registry.mu.Lock()
	registry.visitors["old_ip"] = &visitor{lastSeen: time.Now().Add(-5 * time.Minute)}
	registry.visitors["new_ip"] = &visitor{lastSeen: time.Now()}
	for ip, v := range registry.visitors {
		if time.Since(v.lastSeen) > 3*time.Minute {
			delete(registry.visitors, ip)
		}
	}
	_, oldExists := registry.visitors["old_ip"]
	_, newExists := registry.visitors["new_ip"]
	registry.mu.Unlock()

	assert.False(t, oldExists)
	assert.True(t, newExists)
}

func TestVisitorRegistry_ReusesLimiterPerIP(t *testing.T) {
	registry := newVisitorRegistry(5, 10)

	first := registry.limiterFor("10.0.0.1")
	second := registry.limiterFor("10.0.0.1")
	other := registry.limiterFor("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}
