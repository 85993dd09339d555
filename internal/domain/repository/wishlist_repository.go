package repository

import (
	"context"
	"errors"

	"wishlist/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistNotFound is a domain-specific error returned when a wishlist is not found.
var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository defines the standard operations for wishlist persistence.
type WishlistRepository interface {
	// FindByID retrieves a single wishlist by its ID, with its products preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Wishlist, error)

	// FindByOwner retrieves all wishlists owned by the given user, newest
	// first, with their products preloaded.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error)

	// Create persists a new wishlist and fills in the generated ID and timestamps.
	// The products attached to the entity are NOT persisted here; nested
	// product handling is the aggregate's job via ProductRepository.
	Create(ctx context.Context, wishlist *entity.Wishlist) error

	// Update persists the wishlist's scalar columns. The owner column is
	// never written by this method.
	Update(ctx context.Context, wishlist *entity.Wishlist) error

	// Delete removes a wishlist. Its products are removed by the store's
	// cascade rule.
	Delete(ctx context.Context, id int64) error
}
