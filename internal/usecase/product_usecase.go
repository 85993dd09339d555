package usecase

import (
	"context"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product operations nested
// under a wishlist. The owning wishlist is resolved first on every
// call, so products in someone else's wishlist are indistinguishable
// from products that do not exist.
type ProductUsecase interface {
	ListProducts(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64) (*entity.Product, error)
	UpdateProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64) error
}

// UpdateProductInput defines a partial product update. Nil fields are
// left untouched.
type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty"`
	Priority *string  `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Link     *string  `json:"link,omitempty" validate:"omitempty,url"`
	Notes    *string  `json:"notes,omitempty"`
}
