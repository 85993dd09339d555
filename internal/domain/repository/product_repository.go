package repository

import (
	"context"
	"errors"

	"wishlist/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// Products are always addressed through their wishlist; there is no lookup
// that spans wishlists.
type ProductRepository interface {
	// FindByID retrieves a product by ID, scoped to the given wishlist.
	FindByID(ctx context.Context, wishlistID, id int64) (*entity.Product, error)

	// FindByWishlist retrieves all products of a wishlist, newest first.
	FindByWishlist(ctx context.Context, wishlistID int64) ([]*entity.Product, error)

	// FindOrCreate returns the existing product of the wishlist whose
	// (name, priority, price, link, notes) exactly match the given entity,
	// creating it when no such product exists. This full-field match is the
	// identity rule for nested product payloads: clients supply no surrogate
	// ids, so two payload items with identical fields refer to one product.
	FindOrCreate(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Create persists a new product and fills in the generated ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a single product from its wishlist.
	Delete(ctx context.Context, wishlistID, id int64) error

	// DeleteByWishlist removes every product of the given wishlist. This is
	// the only bulk removal path; it backs the "products: []" update.
	DeleteByWishlist(ctx context.Context, wishlistID int64) error
}
