package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as the {status, message} envelope.
// Unexpected errors become a generic 500: the cause is logged, never
// echoed back to the client.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			apiErr  *APIError
			echoErr *echo.HTTPError
		)

		var code int
		var body ErrorBody
		switch {
		case errors.As(err, &apiErr):
			code = apiErr.HTTPStatus
			body = ErrorBody{Status: apiErr.Status, Message: apiErr.Message}
		case errors.As(err, &echoErr):
			code = echoErr.Code
			body = ErrorBody{Status: statusLabel(code), Message: fmt.Sprintf("%v", echoErr.Message)}
		default:
			log.Error("unhandled error", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
			code = http.StatusInternalServerError
			body = ErrorBody{Status: StatusInternal, Message: "Internal Server Error"}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func statusLabel(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return StatusUnauthorized
	case http.StatusForbidden:
		return StatusForbidden
	case http.StatusNotFound:
		return StatusNotFound
	case http.StatusConflict:
		return StatusConflict
	case http.StatusBadRequest:
		return StatusBadRequest
	default:
		if code >= 500 {
			return StatusInternal
		}
		return StatusBadRequest
	}
}
