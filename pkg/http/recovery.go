package http

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	applogger "github.com/csg8/suanmingapp/pkg/logger"
)

// Recover turns a handler panic into a logged 500 envelope.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				perr, ok := r.(error)
				if !ok {
					perr = fmt.Errorf("%v", r)
				}
				l.Error("panic recovered",
					applogger.Error(perr),
					applogger.String("path", c.Request().URL.Path),
					applogger.String("stack", string(debug.Stack())),
				)
				err = AppErrorResponse(c, InternalError("internal server error").WithError(perr))
			}()
			return next(c)
		}
	}
}
