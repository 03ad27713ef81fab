package models

import "time"

// Table statuses. A table is always in exactly one of these states.
const (
	StatusAvailable = "AVAILABLE"
	StatusOccupied  = "OCCUPIED"
	StatusReserved  = "RESERVED"
	StatusCleaning  = "CLEANING"
)

// RestaurantTable is a physical table on the floor. Number is unique
// among live rows; TableTypeID references the table-type service.
type RestaurantTable struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      int       `gorm:"not null;index"           json:"number"`
	TableTypeID uint      `gorm:"not null;index"           json:"tableTypeId"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Status      string    `gorm:"not null;size:20;default:AVAILABLE" json:"status"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the declared table states.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusCleaning:
		return true
	}
	return false
}
