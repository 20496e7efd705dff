package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newCORSServer(origins ...string) *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType},
		MaxAge:       10 * time.Minute,
	}))
	e.GET("/api/catalog", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func preflight(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/api/catalog", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	return req
}

func TestCORSPreflightAllowedOrigin(t *testing.T) {
	e := newCORSServer("https://app.example.com")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, preflight("https://app.example.com"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET, POST", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "Content-Type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	assert.Equal(t, "600", rec.Header().Get(echo.HeaderAccessControlMaxAge))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	e := newCORSServer("https://app.example.com")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, preflight("https://evil.example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSWildcard(t *testing.T) {
	e := newCORSServer("*")

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set(echo.HeaderOrigin, "https://any.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), "simple requests get no preflight headers")

	req = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin), "same-origin requests are untouched")
	assert.Equal(t, echo.HeaderOrigin, rec.Header().Get(echo.HeaderVary))
}
