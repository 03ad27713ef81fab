package repo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/pkg/authz"
	"github.com/tuanle-dev/table-management/pkg/permissions"
	"github.com/tuanle-dev/table-management/services/auth/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRefreshNotFound = errors.New("refresh token not found")
)

type GormRepo struct {
	DB *gorm.DB
}

// sha256Hex is how refresh tokens are stored: the raw token never
// touches the database.
func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindActiveUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindActiveByUsername implements authz.UserDirectory.
func (r *GormRepo) FindActiveByUsername(ctx context.Context, username string) (*authz.Account, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ? AND is_deleted = ?", username, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrUserNotFound
		}
		return nil, err
	}
	role, ok := permissions.ParseRole(user.Role)
	if !ok {
		return nil, authz.ErrUserNotFound
	}
	return &authz.Account{Username: user.Username, Role: role}, nil
}
