package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table. Deleting a user cascades to
// their wishlists; deleting a wishlist cascades to its products.
type WishlistModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	OccasionDate *time.Time `gorm:"type:date"`
	Address      string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}
