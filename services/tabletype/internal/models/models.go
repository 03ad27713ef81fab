package models

import "time"

// TableType describes a category of restaurant table, for example a
// two-seat window table or a private booth. Rows are soft deleted.
type TableType struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;size:100"        json:"name"`
	Description string    `json:"description"`
	Capacity    int       `gorm:"not null"                 json:"capacity"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
