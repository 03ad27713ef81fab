package models

import "time"

// User is the identity record. Rows are never hard-deleted; IsDeleted
// marks them gone.
type User struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password    string `gorm:"size:100;not null" json:"-"`
	FullName    string `gorm:"size:150;not null" json:"fullName"`
	PhoneNumber string `gorm:"size:15;not null" json:"phoneNumber"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Role        string `gorm:"size:20;not null" json:"role"`
	IsLocked    bool   `gorm:"not null;default:false" json:"-"`
	IsDeleted   bool   `gorm:"not null;default:false" json:"-"`

	PasswordChangedAt time.Time `json:"-"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// RefreshToken is a persisted refresh credential. Token holds the
// SHA-256 hex of the issued token string and is the lookup key, so at
// most one row is retrievable per token value.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Token     string `gorm:"uniqueIndex;size:64;not null" json:"token"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	JTI       string `gorm:"size:36;not null" json:"jti"`
	ExpiresAt int64  `gorm:"not null" json:"expires_at"`
}
