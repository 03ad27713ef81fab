package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler *AuthHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/refresh-token", d.AuthHandler.RefreshToken)
	auth.POST("/authentication", d.AuthHandler.Authenticate)
}
