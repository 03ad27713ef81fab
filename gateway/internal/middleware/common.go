package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/tuanle-dev/table-management/pkg/middleware/logging"
)

func Common(base *slog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomw.Recover(),
		echomw.RequestID(),
		loggingmw.RequestLogger(base),
		echomw.Secure(),
	}
}
