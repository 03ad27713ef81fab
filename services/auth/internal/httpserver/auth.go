package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/tuanle-dev/table-management/pkg/authz"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	"github.com/tuanle-dev/table-management/services/auth/internal/models"
	"github.com/tuanle-dev/table-management/services/auth/internal/service"
)

type AuthHTTP struct {
	Svc   *service.AuthService
	Authz *authz.Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authRequest struct {
	Token         string `json:"token"`
	URLRequest    string `json:"urlRequest"`
	MethodRequest string `json:"methodRequest"`
}

// userResponse is the sanitized profile attached to token responses.
type userResponse struct {
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		Username:    u.Username,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Role:        u.Role,
	}
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login rejected", "reason", "invalid body", "error", err)
		return httpx.BadRequest("invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return httpx.BadRequest("username and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}

	return httpx.OK(c, authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         toUserResponse(res.User),
	})
}

func (h *AuthHTTP) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_refresh")

	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("refresh rejected", "reason", "invalid body", "error", err)
		return httpx.BadRequest("invalid body")
	}
	if req.RefreshToken == "" {
		return httpx.BadRequest("refreshToken is required")
	}

	res, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	return httpx.OK(c, authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		User:         toUserResponse(res.User),
	})
}

// Authenticate is the internal authorization oracle consumed by the
// gateway filter.
func (h *AuthHTTP) Authenticate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_authenticate")

	var req authRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("authenticate rejected", "reason", "invalid body", "error", err)
		return httpx.BadRequest("invalid body")
	}

	decision, err := h.Authz.Authorize(ctx, req.Token, req.MethodRequest, req.URLRequest)
	if err != nil {
		return err
	}
	return httpx.OK(c, decision)
}
