package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/services/auth/internal/models"
)

// CreateRefreshToken stores a new refresh token row. token is the raw
// issued string; only its hash is persisted.
func (r *GormRepo) CreateRefreshToken(ctx context.Context, userID uint, token, jti string, expiresAt int64) error {
	row := models.RefreshToken{
		Token:     sha256Hex(token),
		UserID:    userID,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}
	return r.DB.WithContext(ctx).Create(&row).Error
}

// FindRefreshByToken looks a refresh token up by exact raw token value.
func (r *GormRepo) FindRefreshByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("token = ?", sha256Hex(token)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshNotFound
		}
		return nil, err
	}
	return &row, nil
}

// DeleteRefreshByToken removes a refresh token row. Deleting a token
// that is already gone is not an error.
func (r *GormRepo) DeleteRefreshByToken(ctx context.Context, token string) error {
	return r.DB.WithContext(ctx).
		Where("token = ?", sha256Hex(token)).
		Delete(&models.RefreshToken{}).Error
}
