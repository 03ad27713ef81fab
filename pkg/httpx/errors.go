package httpx

import "net/http"

// Status labels used in the error envelope.
const (
	StatusUnauthorized = "UNAUTHORIZED"
	StatusForbidden    = "FORBIDDEN"
	StatusNotFound     = "NOT_FOUND"
	StatusConflict     = "CONFLICT"
	StatusBadRequest   = "BAD_REQUEST"
	StatusInternal     = "INTERNAL_SERVER_ERROR"
)

// APIError is a terminal request failure with a fixed HTTP mapping.
// Services return these directly; the echo error handler renders them.
type APIError struct {
	HTTPStatus int
	Status     string
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Authentication and authorization failures.
var (
	ErrInvalidCredentials    = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Invalid username or password"}
	ErrAccountDisabled       = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Account is disabled"}
	ErrAccountLocked         = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Account is locked"}
	ErrCredentialsExpired    = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Credentials have expired"}
	ErrUserNotFound          = &APIError{http.StatusNotFound, StatusNotFound, "User not found"}
	ErrMissingOrInvalidToken = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Missing or invalid token"}
	ErrTokenExpired          = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Token has expired"}
	ErrForbidden             = &APIError{http.StatusForbidden, StatusForbidden, "Access denied"}
	ErrRefreshTokenNotFound  = &APIError{http.StatusNotFound, StatusNotFound, "Refresh token not found"}
	ErrRefreshTokenExpired   = &APIError{http.StatusUnauthorized, StatusUnauthorized, "Refresh token was expired. Please make a new sign-in request"}
)

func NotFound(msg string) *APIError {
	return &APIError{http.StatusNotFound, StatusNotFound, msg}
}

func Conflict(msg string) *APIError {
	return &APIError{http.StatusConflict, StatusConflict, msg}
}

func BadRequest(msg string) *APIError {
	return &APIError{http.StatusBadRequest, StatusBadRequest, msg}
}
