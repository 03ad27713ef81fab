package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	TableTypeHandler *TableTypeHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	g := e.Group("/table-type")
	g.GET("/list", d.TableTypeHandler.List)
	g.GET("/page", d.TableTypeHandler.Page)
	g.GET("/:id", d.TableTypeHandler.Get)
	g.POST("/create", d.TableTypeHandler.Create)
	g.PUT("/update/:id", d.TableTypeHandler.Update)
	g.DELETE("/delete/:id", d.TableTypeHandler.Delete)
}
