package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const MessageSuccess = "Success"

// Response is the success envelope shared by every service.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Message: MessageSuccess, Data: data})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Response{Message: MessageSuccess, Data: data})
}

// PageData wraps a paginated result set.
type PageData struct {
	Items      any   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPageData(items any, page, size int, total int64) PageData {
	totalPages := int64(0)
	if size > 0 {
		totalPages = (total + int64(size) - 1) / int64(size)
	}
	return PageData{Items: items, Page: page, Size: size, Total: total, TotalPages: totalPages}
}
