package http

import (
	"github.com/labstack/echo/v4"
)

// Allower decides whether a request identified by key may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimit rejects requests with a 429 envelope once the client IP runs out
// of tokens. Paths in skip are never limited.
func RateLimit(a Allower, skip ...string) echo.MiddlewareFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skipped[c.Request().URL.Path]; ok {
				return next(c)
			}
			if !a.Allow(c.RealIP()) {
				return AppErrorResponse(c, TooManyRequestsError("rate limit exceeded, retry later"))
			}
			return next(c)
		}
	}
}
