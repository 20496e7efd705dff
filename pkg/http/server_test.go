package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type routes func(e *echo.Echo)

func (r routes) RegisterRoutes(e *echo.Echo) { r(e) }

type denyAll struct{ calls int }

func (d *denyAll) Allow(string) bool {
	d.calls++
	return false
}

func TestRecoverWritesEnvelope(t *testing.T) {
	srv := NewServer(routes(func(e *echo.Echo) {
		e.GET("/boom", func(echo.Context) error { panic("boom") })
	}), WithMetricsPath(""))

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	body := rec.Body.Bytes()
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int64(500), gjson.GetBytes(body, "status").Int())
	assert.Equal(t, "Internal Server Error", gjson.GetBytes(body, "message").String())
	assert.Equal(t, "ERR_INTERNAL", gjson.GetBytes(body, "data.0.code").String())
}

func TestRateLimitEnvelopeKeepsCORS(t *testing.T) {
	limiter := &denyAll{}
	srv := NewServer(routes(func(e *echo.Echo) {
		e.GET("/api/catalog", func(c echo.Context) error { return SuccessResponse(c, "ok") })
	}), WithMetricsPath(""), WithRateLimit(limiter), WithCORS([]string{"https://app.example.com"}, 0))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	body := rec.Body.Bytes()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, int64(429), gjson.GetBytes(body, "status").Int())
	assert.Equal(t, "ERR_RATE_LIMITED", gjson.GetBytes(body, "data.0.code").String())
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	pre := httptest.NewRequest(http.MethodOptions, "/api/catalog", nil)
	pre.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	pre.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, pre)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, limiter.calls, "preflights bypass the limiter")

	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, limiter.calls)
}
