package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/services/table/internal/service"
	"github.com/tuanle-dev/table-management/services/table/internal/transport"
)

type TableHTTP struct {
	Svc *service.TableService
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, httpx.BadRequest("id must be a positive integer")
	}
	return uint(id), nil
}

func (h *TableHTTP) Page(c echo.Context) error {
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

func (h *TableHTTP) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	table, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return httpx.OK(c, table)
}

func (h *TableHTTP) Create(c echo.Context) error {
	var req transport.TableRequest
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest("invalid body")
	}

	table, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return httpx.Created(c, table)
}

func (h *TableHTTP) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.TableRequest
	if err := c.Bind(&req); err != nil {
		return httpx.BadRequest("invalid body")
	}

	table, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return httpx.OK(c, table)
}

func (h *TableHTTP) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return httpx.OK(c, nil)
}
