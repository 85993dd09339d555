package impl

import (
	"context"
	"log/slog"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface. Every operation
// resolves the owning wishlist first, so the ownership rule is enforced in
// one place before any product row is touched.
type productService struct {
	fx.In

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListProducts returns every product of an owned wishlist, newest first.
func (srv *productService) ListProducts(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID); err != nil {
			return err
		}

		found, err := repoFactory.ProductRepo().FindByWishlist(ctx, wishlistID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct adds a product to an owned wishlist.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(wishlistID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID); err != nil {
			return err
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product created", "productID", product.ID, "wishlistID", wishlistID)

	return product, nil
}

// GetProduct returns a single product of an owned wishlist.
func (srv *productService) GetProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID); err != nil {
			return err
		}

		found, err := findWishlistProduct(ctx, repoFactory.ProductRepo(), wishlistID, productID)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update to a product of an owned wishlist.
// Nil fields stay as they are.
func (srv *productService) UpdateProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID); err != nil {
			return err
		}

		productRepo := repoFactory.ProductRepo()

		found, err := findWishlistProduct(ctx, productRepo, wishlistID, productID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Priority != nil {
			found.Priority = entity.Priority(*input.Priority)
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.Link != nil {
			found.Link = *input.Link
		}
		if input.Notes != nil {
			found.Notes = *input.Notes
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a single product from an owned wishlist.
func (srv *productService) DeleteProduct(ctx context.Context, ownerID uuid.UUID, wishlistID, productID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireOwnedWishlist(ctx, repoFactory.WishlistRepo(), ownerID, wishlistID); err != nil {
			return err
		}

		productRepo := repoFactory.ProductRepo()

		if _, err := findWishlistProduct(ctx, productRepo, wishlistID, productID); err != nil {
			return err
		}

		if err := productRepo.Delete(ctx, wishlistID, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Product deleted", "productID", productID, "wishlistID", wishlistID)

	return nil
}

// findWishlistProduct looks up a product scoped to its wishlist, translating
// the repository sentinel into the domain error.
func findWishlistProduct(ctx context.Context, productRepo repository.ProductRepository, wishlistID, productID int64) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, wishlistID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
