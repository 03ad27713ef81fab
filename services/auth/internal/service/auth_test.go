package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tuanle-dev/table-management/pkg/hash"
	"github.com/tuanle-dev/table-management/pkg/httpx"
	"github.com/tuanle-dev/table-management/pkg/permissions"
	"github.com/tuanle-dev/table-management/pkg/tokens"
	"github.com/tuanle-dev/table-management/services/auth/internal/models"
	"github.com/tuanle-dev/table-management/services/auth/internal/repo"
)

func newTestService(t *testing.T) (*AuthService, *repo.GormRepo) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))

	rp := &repo.GormRepo{DB: db}
	svc := &AuthService{
		Repo:       rp,
		Codec:      tokens.NewCodec([]byte("test-secret")),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
	return svc, rp
}

func seedUser(t *testing.T, rp *repo.GormRepo, username, password string, mutate func(*models.User)) *models.User {
	t.Helper()

	hashed, err := hash.Password(password)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		FullName: "Test User",
		Role:     string(permissions.RoleUser),
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, rp.DB.Create(user).Error)
	return user
}

func TestAuthService_Login(t *testing.T) {
	svc, rp := newTestService(t)
	seedUser(t, rp, "alice", "s3cret", func(u *models.User) { u.Role = string(permissions.RoleAdmin) })

	res, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "alice", res.User.Username)

	claims, err := svc.Codec.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, string(permissions.RoleAdmin), claims.Role)

	// The refresh token must be redeemable from the store.
	row, err := rp.FindRefreshByToken(context.Background(), res.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, row.UserID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc, rp := newTestService(t)
	seedUser(t, rp, "alice", "s3cret", nil)
	seedUser(t, rp, "gone", "s3cret", func(u *models.User) { u.IsDeleted = true })
	seedUser(t, rp, "frozen", "s3cret", func(u *models.User) { u.IsLocked = true })

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"unknown username", "nobody", "s3cret", httpx.ErrInvalidCredentials},
		{"wrong password", "alice", "wrong", httpx.ErrInvalidCredentials},
		{"deleted account", "gone", "s3cret", httpx.ErrAccountDisabled},
		{"locked account", "frozen", "s3cret", httpx.ErrAccountLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Login_CredentialsExpired(t *testing.T) {
	svc, rp := newTestService(t)
	svc.PasswordMaxAge = 30 * 24 * time.Hour
	seedUser(t, rp, "stale", "s3cret", func(u *models.User) {
		u.PasswordChangedAt = time.Now().Add(-60 * 24 * time.Hour)
	})

	_, err := svc.Login(context.Background(), "stale", "s3cret")
	assert.ErrorIs(t, err, httpx.ErrCredentialsExpired)
}

func TestAuthService_Refresh(t *testing.T) {
	svc, rp := newTestService(t)
	seedUser(t, rp, "alice", "s3cret", nil)

	login, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	res, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	// No rotation: the same refresh token comes back.
	assert.Equal(t, login.RefreshToken, res.RefreshToken)

	claims, err := svc.Codec.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	_, err = rp.FindRefreshByToken(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Refresh_Unknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, httpx.ErrRefreshTokenNotFound)
}

func TestAuthService_Refresh_Expired(t *testing.T) {
	svc, rp := newTestService(t)
	user := seedUser(t, rp, "alice", "s3cret", nil)

	token, err := svc.Codec.Issue(user.Username, user.ID, user.Role, time.Hour)
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute).Unix()
	require.NoError(t, rp.CreateRefreshToken(context.Background(), user.ID, token, "jti-1", expired))

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, httpx.ErrRefreshTokenExpired)

	// Expired rows are deleted eagerly.
	_, err = rp.FindRefreshByToken(context.Background(), token)
	assert.ErrorIs(t, err, repo.ErrRefreshNotFound)
}

func TestAuthService_Refresh_UserDeleted(t *testing.T) {
	svc, rp := newTestService(t)
	user := seedUser(t, rp, "alice", "s3cret", nil)

	login, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	require.NoError(t, rp.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("is_deleted", true).Error)

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, httpx.ErrUserNotFound)
}
