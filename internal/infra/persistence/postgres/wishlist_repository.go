package postgres

import (
	"context"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the repository.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// FindByID retrieves a wishlist by its ID with its products preloaded,
// newest product first.
func (repo *wishlistRepository) FindByID(ctx context.Context, id int64) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id DESC")
		}).
		Where("id = ?", id).
		First(&wishlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist by id")
	}

	return toWishlistDomain(&wishlistM), nil
}

// FindByOwner retrieves all wishlists owned by a user, newest first.
func (repo *wishlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error) {
	var wishlistModels []*model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id DESC")
		}).
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&wishlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlists by owner")
	}

	wishlists := make([]*entity.Wishlist, 0, len(wishlistModels))
	for _, wishlistM := range wishlistModels {
		wishlists = append(wishlists, toWishlistDomain(wishlistM))
	}

	return wishlists, nil
}

// Create persists a new wishlist. Products attached to the entity are ignored
// here; the aggregate attaches them one by one through ProductRepository so
// the find-or-create identity rule applies.
func (repo *wishlistRepository) Create(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlistM := fromWishlistDomain(wishlist)
	wishlistM.Products = nil

	if err := repo.db.WithContext(ctx).Create(wishlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWishlistNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wishlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist")
	}

	wishlist.ID = wishlistM.ID
	wishlist.CreatedAt = wishlistM.CreatedAt
	wishlist.UpdatedAt = wishlistM.UpdatedAt

	return nil
}

// Update persists the wishlist's scalar columns. The user_id column is
// deliberately excluded: ownership is immutable after creation.
func (repo *wishlistRepository) Update(ctx context.Context, wishlist *entity.Wishlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WishlistModel{}).
		Where("id = ?", wishlist.ID).
		Select("title", "description", "occasion_date", "address", "updated_at").
		Updates(map[string]any{
			"title":         wishlist.Title,
			"description":   wishlist.Description,
			"occasion_date": wishlist.OccasionDate,
			"address":       wishlist.Address,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required wishlist information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wishlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistNotFound
	}

	return nil
}

// Delete removes a wishlist. The ON DELETE CASCADE constraint removes its products.
func (repo *wishlistRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWishlistDomain converts a GORM WishlistModel to a domain Wishlist entity.
func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, toProductDomain(&data.Products[i]))
	}

	return &entity.Wishlist{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Description:  data.Description,
		OccasionDate: data.OccasionDate,
		Address:      data.Address,
		Products:     products,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromWishlistDomain converts a domain Wishlist entity to a GORM WishlistModel.
func fromWishlistDomain(data *entity.Wishlist) *model.WishlistModel {
	if data == nil {
		return nil
	}

	products := make([]model.ProductModel, 0, len(data.Products))
	for _, product := range data.Products {
		products = append(products, *fromProductDomain(product))
	}

	return &model.WishlistModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Description:  data.Description,
		OccasionDate: data.OccasionDate,
		Address:      data.Address,
		Products:     products,
	}
}
