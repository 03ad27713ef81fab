package directory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tuanle-dev/table-management/pkg/authz"
	"github.com/tuanle-dev/table-management/pkg/permissions"
)

// userRow is the slice of the auth-service users table the gateway
// needs for authorization decisions.
type userRow struct {
	Username  string
	Role      string
	IsDeleted bool
}

func (userRow) TableName() string { return "users" }

// GormDirectory reads accounts straight from the shared user store so
// the gateway can authorize without a network hop. It implements
// authz.UserDirectory.
type GormDirectory struct {
	DB *gorm.DB
}

func (d *GormDirectory) FindActiveByUsername(ctx context.Context, username string) (*authz.Account, error) {
	var row userRow
	err := d.DB.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authz.ErrUserNotFound
		}
		return nil, err
	}

	role, ok := permissions.ParseRole(row.Role)
	if !ok {
		return nil, authz.ErrUserNotFound
	}
	return &authz.Account{Username: row.Username, Role: role}, nil
}
