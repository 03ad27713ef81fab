package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/service"
	"github.com/tuanle-dev/table-management/services/tabletype/internal/transport"
)

type TableTypeHTTP struct {
	Svc *service.TableTypeService
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, httpx.BadRequest("id must be a positive integer")
	}
	return uint(id), nil
}

func (h *TableTypeHTTP) List(c echo.Context) error {
	var q transport.ListQuery
	if err := c.Bind(&q); err != nil {
		return httpx.BadRequest("invalid query parameters")
	}

	items, err := h.Svc.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return httpx.OK(c, items)
}

func (h *TableTypeHTTP) Page(c echo.Context) error {
	var q transport.PageQuery
	if err := c.Bind(&q); err != nil {
		return httpx.BadRequest("invalid query parameters")
	}

	page, err := h.Svc.Page(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return httpx.OK(c, page)
}

func (h *TableTypeHTTP) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	tt, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return httpx.OK(c, tt)
}

func (h *TableTypeHTTP) Create(c echo.Context) error {
	var req transport.TableTypeRequest
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest("invalid body")
	}

	tt, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return httpx.Created(c, tt)
}

func (h *TableTypeHTTP) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.TableTypeRequest
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest("invalid body")
	}

	tt, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return httpx.OK(c, tt)
}

func (h *TableTypeHTTP) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return httpx.OK(c, nil)
}
