package model

import "time"

// ProductModel mirrors the 'products' table. A product row exists only as part
// of a wishlist; there is no direct user reference.
type ProductModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	WishlistID int64   `gorm:"not null;index"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Priority   string  `gorm:"type:varchar(6)"`
	Price      float64 `gorm:"type:decimal(7,2);not null"`
	Link       string  `gorm:"type:varchar(255)"`
	Notes      string  `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
