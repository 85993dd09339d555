// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireOwnedWishlist resolves a wishlist and checks that it belongs to the
// given owner. A wishlist that is absent and a wishlist owned by someone else
// both come back as ErrWishlistNotFound, so a caller can never learn whether
// a foreign wishlist exists.
func requireOwnedWishlist(
	ctx context.Context,
	repo repository.WishlistRepository,
	ownerID uuid.UUID,
	wishlistID int64,
) (*entity.Wishlist, error) {
	wishlist, err := repo.FindByID(ctx, wishlistID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistNotFound) {
			return nil, errors.WithStack(domainerrors.ErrWishlistNotFound)
		}

		return nil, errors.Wrap(err, "failed to find wishlist")
	}

	if wishlist.UserID != ownerID {
		return nil, errors.WithStack(domainerrors.ErrWishlistNotFound)
	}

	return wishlist, nil
}
