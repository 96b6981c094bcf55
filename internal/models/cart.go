package models

import (
	"time"
)

// Cart is the per-user staging area. At most one cart per user; it is
// created lazily on first access and survives checkout empty.
type Cart struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}
