package impl

import (
	"context"
	"log/slog"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/domain/service"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface. It treats a
// wishlist and its products as one aggregate: nested product payloads are
// resolved against the wishlist's existing products by a full-field match,
// and the owner set at creation time is never changed afterwards.
type wishlistService struct {
	fx.In

	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	txManager repository.TransactionManager,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		txManager:     txManager,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

// ListWishlists returns every wishlist of the owner, newest first.
func (srv *wishlistService) ListWishlists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error) {
	var wishlists []*entity.Wishlist

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WishlistRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlists")
		}
		wishlists = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wishlists, nil
}

// CreateWishlist creates a wishlist for the owner together with its nested
// products. Duplicate product entries in the payload collapse onto a single
// stored product because attachment goes through the full-field match.
func (srv *wishlistService) CreateWishlist(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWishlistInput) (*entity.Wishlist, error) {
	occasionDate, err := parseDate(input.OccasionDate)
	if err != nil {
		return nil, err
	}

	wishlist := &entity.Wishlist{
		UserID:       ownerID,
		Title:        input.Title,
		Description:  input.Description,
		OccasionDate: occasionDate,
		Address:      input.Address,
	}

	var created *entity.Wishlist

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		if err := wishlistRepo.Create(ctx, wishlist); err != nil {
			return errors.Wrap(err, "failed to create wishlist")
		}

		if err := attachProducts(ctx, repoFactory.ProductRepo(), wishlist.ID, input.Products); err != nil {
			return err
		}

		// Reload so duplicate payload items, which collapse onto one
		// stored product, show up once in the returned aggregate.
		fresh, err := wishlistRepo.FindByID(ctx, wishlist.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload wishlist")
		}
		created = fresh

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Wishlist created", "wishlistID", created.ID, "ownerID", ownerID, "products", len(created.Products))

	return created, nil
}

// GetWishlist returns a single owned wishlist with its products.
func (srv *wishlistService) GetWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) (*entity.Wishlist, error) {
	var wishlist *entity.Wishlist

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID)
		if err != nil {
			return err
		}
		wishlist = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wishlist, nil
}

// UpdateWishlist applies a partial update to an owned wishlist. Scalar
// fields that are nil stay as they are; the owner is never touched. The
// products field is tri-state: absent leaves the product set alone, an
// empty list removes every product, and a non-empty list attaches the
// listed products on top of the existing ones.
func (srv *wishlistService) UpdateWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *usecase.UpdateWishlistInput) (*entity.Wishlist, error) {
	var wishlist *entity.Wishlist

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		found, err := requireOwnedWishlist(ctx, wishlistRepo, ownerID, wishlistID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.OccasionDate != nil {
			parsed, err := parseDate(*input.OccasionDate)
			if err != nil {
				return err
			}
			found.OccasionDate = parsed
		}
		if input.Address != nil {
			found.Address = *input.Address
		}

		if err := wishlistRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update wishlist")
		}

		if input.Products != nil {
			productRepo := repoFactory.ProductRepo()

			if len(*input.Products) == 0 {
				if err := productRepo.DeleteByWishlist(ctx, wishlistID); err != nil {
					return errors.Wrap(err, "failed to clear products")
				}
			} else if err := attachProducts(ctx, productRepo, wishlistID, *input.Products); err != nil {
				return err
			}
		}

		// Reload so the returned aggregate reflects the stored state,
		// ordering included.
		fresh, err := wishlistRepo.FindByID(ctx, wishlistID)
		if err != nil {
			return errors.Wrap(err, "failed to reload wishlist")
		}
		wishlist = fresh

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wishlist, nil
}

// DeleteWishlist removes an owned wishlist and, through the store's cascade
// rule, every product in it.
func (srv *wishlistService) DeleteWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		if _, err := requireOwnedWishlist(ctx, wishlistRepo, ownerID, wishlistID); err != nil {
			return err
		}

		if err := wishlistRepo.Delete(ctx, wishlistID); err != nil {
			return errors.Wrap(err, "failed to delete wishlist")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Wishlist deleted", "wishlistID", wishlistID, "ownerID", ownerID)

	return nil
}

// GenerateShareQR renders a QR code image encoding a share link for an
// owned wishlist.
func (srv *wishlistService) GenerateShareQR(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID)

		return err
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateShareQR(wishlistID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// ResolveShare decodes a scanned share payload and returns the wishlist it
// points at. Holding the payload is what grants access, so the lookup is
// not scoped to an owner; a payload that does not decode behaves like a
// missing wishlist.
func (srv *wishlistService) ResolveShare(ctx context.Context, qrData string) (*entity.Wishlist, error) {
	wishlistID, err := srv.qrcodeService.ParseShareQR(qrData)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrWishlistNotFound)
	}

	var wishlist *entity.Wishlist

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WishlistRepo().FindByID(ctx, wishlistID)
		if err != nil {
			if errors.Is(err, repository.ErrWishlistNotFound) {
				return errors.WithStack(domainerrors.ErrWishlistNotFound)
			}

			return errors.Wrap(err, "failed to find shared wishlist")
		}
		wishlist = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wishlist, nil
}

// attachProducts resolves each payload item through the full-field match so
// repeated entries land on the same stored product. Existing products are
// never removed here; callers reload the aggregate to pick up the stored
// state.
func attachProducts(ctx context.Context, productRepo repository.ProductRepository, wishlistID int64, inputs []usecase.ProductInput) error {
	for i := range inputs {
		if _, err := productRepo.FindOrCreate(ctx, productFromInput(wishlistID, &inputs[i])); err != nil {
			return errors.Wrapf(err, "failed to attach product %q", inputs[i].Name)
		}
	}

	return nil
}

// productFromInput maps a nested payload item onto a product entity bound
// to the given wishlist.
func productFromInput(wishlistID int64, input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		WishlistID: wishlistID,
		Name:       input.Name,
		Priority:   entity.Priority(input.Priority),
		Price:      input.Price,
		Link:       input.Link,
		Notes:      input.Notes,
	}
}
