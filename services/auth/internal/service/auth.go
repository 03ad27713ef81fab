package service

import (
	"context"
	"errors"
	"time"

	"github.com/tuanle-dev/table-management/pkg/hash"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/logging"
	"github.com/tuanle-dev/table-management/pkg/tokens"
	"github.com/tuanle-dev/table-management/services/auth/internal/models"
	"github.com/tuanle-dev/table-management/services/auth/internal/repo"
)

// AuthService issues and refreshes token pairs against the user store.
type AuthService struct {
	Repo       *repo.GormRepo
	Codec      *tokens.Codec
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// PasswordMaxAge expires stored credentials after this duration.
	// Zero disables the check.
	PasswordMaxAge time.Duration
}

// LoginResult carries the issued pair plus the sanitized profile.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Login verifies the credentials and issues an access/refresh pair.
// The refresh token is persisted so it can be redeemed later.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login failed", "reason", "unknown username")
			return nil, httpx.ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.Check(user.Password, password) {
		l.Warn("login failed", "reason", "password mismatch")
		return nil, httpx.ErrInvalidCredentials
	}
	if user.IsDeleted {
		l.Warn("login failed", "reason", "account disabled")
		return nil, httpx.ErrAccountDisabled
	}
	if user.IsLocked {
		l.Warn("login failed", "reason", "account locked")
		return nil, httpx.ErrAccountLocked
	}
	if s.PasswordMaxAge > 0 && !user.PasswordChangedAt.IsZero() &&
		time.Since(user.PasswordChangedAt) > s.PasswordMaxAge {
		l.Warn("login failed", "reason", "credentials expired")
		return nil, httpx.ErrCredentialsExpired
	}

	accessToken, err := s.Codec.Issue(user.Username, user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.Codec.Issue(user.Username, user.ID, user.Role, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	refreshClaims, err := s.Codec.Parse(refreshToken)
	if err != nil {
		return nil, err
	}
	expiresAt := refreshClaims.ExpiresAt.Time.Unix()
	if err := s.Repo.CreateRefreshToken(ctx, user.ID, refreshToken, refreshClaims.ID, expiresAt); err != nil {
		return nil, err
	}

	l.Info("login successful")
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh redeems a stored refresh token for a fresh access token. The
// refresh token itself is returned unchanged; there is no rotation.
// Expired tokens are deleted from the store on detection.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	row, err := s.Repo.FindRefreshByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repo.ErrRefreshNotFound) {
			l.Warn("refresh failed", "reason", "token not found")
			return nil, httpx.ErrRefreshTokenNotFound
		}
		return nil, err
	}

	if row.ExpiresAt < time.Now().Unix() {
		if err := s.Repo.DeleteRefreshByToken(ctx, refreshToken); err != nil {
			return nil, err
		}
		l.Warn("refresh failed", "reason", "token expired")
		return nil, httpx.ErrRefreshTokenExpired
	}

	user, err := s.Repo.FindActiveUserByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("refresh failed", "reason", "user missing")
			return nil, httpx.ErrUserNotFound
		}
		return nil, err
	}

	accessToken, err := s.Codec.Issue(user.Username, user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return nil, err
	}

	l.Info("refresh successful")
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
