package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FirstName    string     `gorm:"type:varchar(255);not null"`
	LastName     string     `gorm:"type:varchar(255)"`
	Gender       string     `gorm:"type:varchar(1)"`
	Birthday     *time.Time `gorm:"type:date"`
	IsActive     bool       `gorm:"not null;default:true"`
	IsStaff      bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Wishlists []WishlistModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
