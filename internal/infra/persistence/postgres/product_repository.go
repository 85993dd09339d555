package postgres

import (
	"context"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by ID, scoped to the given wishlist.
func (repo *productRepository) FindByID(ctx context.Context, wishlistID, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("wishlist_id = ? AND id = ?", wishlistID, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByWishlist retrieves all products of a wishlist, newest first.
func (repo *productRepository) FindByWishlist(ctx context.Context, wishlistID int64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by wishlist")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindOrCreate returns the wishlist's product whose full field tuple matches
// the given entity, creating it when absent. The match covers every
// client-supplied field; this is the identity rule for nested payload items.
func (repo *productRepository) FindOrCreate(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	productM := fromProductDomain(product)

	// Map conditions (not struct conditions) so zero values such as an unset
	// priority or empty notes still participate in the match.
	if err := repo.db.WithContext(ctx).
		Where(map[string]any{
			"wishlist_id": product.WishlistID,
			"name":        product.Name,
			"priority":    product.Priority.String(),
			"price":       product.Price,
			"link":        product.Link,
			"notes":       product.Notes,
		}).
		FirstOrCreate(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrWishlistNotFound
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create product")
	}

	return toProductDomain(productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrWishlistNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product, scoped to its wishlist.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("wishlist_id = ? AND id = ?", product.WishlistID, product.ID).
		Updates(map[string]any{
			"name":     product.Name,
			"priority": product.Priority.String(),
			"price":    product.Price,
			"link":     product.Link,
			"notes":    product.Notes,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a single product from its wishlist.
func (repo *productRepository) Delete(ctx context.Context, wishlistID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("wishlist_id = ? AND id = ?", wishlistID, id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteByWishlist removes every product of the given wishlist.
func (repo *productRepository) DeleteByWishlist(ctx context.Context, wishlistID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Delete(&model.ProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete wishlist products")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		WishlistID: data.WishlistID,
		Name:       data.Name,
		Priority:   entity.Priority(data.Priority),
		Price:      data.Price,
		Link:       data.Link,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		WishlistID: data.WishlistID,
		Name:       data.Name,
		Priority:   data.Priority.String(),
		Price:      data.Price,
		Link:       data.Link,
		Notes:      data.Notes,
	}
}
