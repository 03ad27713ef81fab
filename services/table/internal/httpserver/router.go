package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	TableHandler *TableHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	g := e.Group("/table")
	g.GET("/page", d.TableHandler.Page)
	g.GET("/:id", d.TableHandler.Get)
	g.POST("/create", d.TableHandler.Create)
	g.PUT("/update/:id", d.TableHandler.Update)
	g.DELETE("/delete/:id", d.TableHandler.Delete)
}
