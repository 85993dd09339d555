package usecase

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist-related business
// operations. Every operation is scoped to the authenticated owner: a
// wishlist that exists but belongs to someone else behaves exactly like
// one that does not exist.
type WishlistUsecase interface {
	ListWishlists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error)
	CreateWishlist(ctx context.Context, ownerID uuid.UUID, input *CreateWishlistInput) (*entity.Wishlist, error)
	GetWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) (*entity.Wishlist, error)
	UpdateWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *UpdateWishlistInput) (*entity.Wishlist, error)
	DeleteWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) error

	// GenerateShareQR renders a QR code image that encodes a share link
	// for an owned wishlist.
	GenerateShareQR(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]byte, error)

	// ResolveShare decodes a scanned share payload and returns the
	// wishlist it points at. The lookup is not scoped to an owner:
	// holding the payload is what grants access.
	ResolveShare(ctx context.Context, qrData string) (*entity.Wishlist, error)
}

// --- Input DTOs ---

// ProductInput defines a nested product inside a wishlist payload.
type ProductInput struct {
	Name     string  `json:"name" validate:"required"`
	Priority string  `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Price    float64 `json:"price,omitempty" validate:"gte=0"`
	Link     string  `json:"link,omitempty" validate:"omitempty,url"`
	Notes    string  `json:"notes,omitempty"`
}

// CreateWishlistInput defines the data required to create a wishlist
// together with its initial products.
type CreateWishlistInput struct {
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description,omitempty"`
	OccasionDate string         `json:"occasion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address      string         `json:"address,omitempty"`
	Products     []ProductInput `json:"products,omitempty" validate:"dive"`
}

// UpdateWishlistInput defines a partial wishlist update. Nil fields are
// left untouched. The Products field is tri-state: nil leaves the
// product set alone, an empty slice removes every product, and a
// non-empty slice attaches the listed products without removing
// existing ones.
type UpdateWishlistInput struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	OccasionDate *string         `json:"occasion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address      *string         `json:"address,omitempty"`
	Products     *[]ProductInput `json:"products,omitempty" validate:"omitempty,dive"`
}
