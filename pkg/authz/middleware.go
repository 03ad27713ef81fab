package authz

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
)

// BearerToken extracts the token from an Authorization: Bearer header,
// or "" when absent.
func BearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// Filter enforces an authorization decision on every request whose path
// falls under one of the protected prefixes. Anything outside the
// prefixes passes through untouched; that shortcut is an optimization
// for gateway-internal endpoints, not a security boundary, as the
// decider itself re-checks anonymous permissions.
func Filter(d Decider, protectedPrefixes []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !underAny(req.URL.Path, protectedPrefixes) {
				return next(c)
			}

			token := BearerToken(c)
			decision, err := d.Authorize(req.Context(), token, req.Method, req.URL.Path)
			if err != nil {
				logging.FromContext(req.Context()).Error("authorize failed", "error", err)
				return err
			}
			if decision.Allowed {
				return next(c)
			}

			switch decision.Reason {
			case ReasonForbidden:
				return httpx.ErrForbidden
			case ReasonTokenExpired:
				return httpx.ErrTokenExpired
			default:
				return httpx.ErrMissingOrInvalidToken
			}
		}
	}
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
