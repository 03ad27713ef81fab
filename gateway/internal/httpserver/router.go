package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tuanle-dev/table-management/pkg/authz"
	"github.com/tuanle-dev/table-management/pkg/httpx"
)

type Deps struct {
	AuthURL      string
	TableURL     string
	TableTypeURL string

	Decider authz.Decider
}

// protectedPrefixes are the route trees the authorization filter guards.
// Anonymous traffic still passes where the permission catalog allows it.
var protectedPrefixes = []string{"/auth", "/table", "/table-type"}

func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/docs", docsIndex)

	authProxy, err := newProxy(d.AuthURL)
	if err != nil {
		return err
	}
	tableProxy, err := newProxy(d.TableURL)
	if err != nil {
		return err
	}
	tableTypeProxy, err := newProxy(d.TableTypeURL)
	if err != nil {
		return err
	}

	guarded := e.Group("", authz.Filter(d.Decider, protectedPrefixes))
	guarded.Any("/auth/*", authProxy)
	guarded.Any("/table/*", tableProxy)
	guarded.Any("/table-type/*", tableTypeProxy)

	return nil
}

// docsIndex lists the public route map so clients can discover the API
// without a separate documentation server.
func docsIndex(c echo.Context) error {
	return httpx.OK(c, map[string]any{
		"auth": []string{
			"POST /auth/login",
			"POST /auth/refresh-token",
		},
		"tableType": []string{
			"GET /table-type/list",
			"GET /table-type/page",
			"GET /table-type/:id",
			"POST /table-type/create",
			"PUT /table-type/update/:id",
			"DELETE /table-type/delete/:id",
		},
		"table": []string{
			"GET /table/page",
			"GET /table/:id",
			"POST /table/create",
			"PUT /table/update/:id",
			"DELETE /table/delete/:id",
		},
	})
}
