package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	mockRepo "wishlist/internal/mocks/repository"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProductService(txManager, logger)

	return productServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// expectProductTx wires a transaction where the ownership guard succeeds for
// the given wishlist and hands the product repository to setup.
func expectProductTx(t *testing.T, fx productServiceFixtures, ctx context.Context, wishlist *entity.Wishlist, setup func(productRepo *mockRepo.MockProductRepository)) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, wishlist.ID).Return(wishlist, nil)

			if setup != nil {
				mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
				setup(mockProductRepo)
			}

			return fn(mockFactory)
		})
}

func TestProductService_ListProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}
	expected := []*entity.Product{
		{ID: 2, WishlistID: 4, Name: "Socks"},
		{ID: 1, WishlistID: 4, Name: "Camera"},
	}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().FindByWishlist(ctx, int64(4)).Return(expected, nil)
	})

	products, err := fx.service.ListProducts(ctx, ownerID, 4)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}
	input := &usecase.ProductInput{
		Name:     "Camera",
		Priority: "HIGH",
		Price:    450,
		Link:     "https://example.com/camera",
	}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(_ context.Context, product *entity.Product) error {
				product.ID = 11

				return nil
			})
	})

	product, err := fx.service.CreateProduct(ctx, ownerID, 4, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, int64(4), product.WishlistID)
	assert.Equal(t, entity.PriorityHigh, product.Priority)
	assert.Equal(t, 450.0, product.Price)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}
	expected := &entity.Product{ID: 7, WishlistID: 4, Name: "Camera"}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().FindByID(ctx, int64(4), int64(7)).Return(expected, nil)
	})

	product, err := fx.service.GetProduct(ctx, ownerID, 4, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().FindByID(ctx, int64(4), int64(99)).Return(nil, repository.ErrProductNotFound)
	})

	product, err := fx.service.GetProduct(ctx, ownerID, 4, 99)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GetProduct_ForeignWishlistLooksAbsent(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 4, UserID: uuid.New()}

	// The guard fails before any product lookup happens.
	expectProductTx(t, fx, ctx, foreign, nil)

	product, err := fx.service.GetProduct(ctx, uuid.New(), 4, 7)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}
	existing := &entity.Product{
		ID:         7,
		WishlistID: 4,
		Name:       "Camera",
		Priority:   entity.PriorityHigh,
		Price:      450,
		Notes:      "Keep me",
	}
	newPrice := 399.99
	input := &usecase.UpdateProductInput{Price: &newPrice}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().FindByID(ctx, int64(4), int64(7)).Return(existing, nil)
		productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(_ context.Context, product *entity.Product) error {
				assert.Equal(t, 399.99, product.Price)
				assert.Equal(t, "Camera", product.Name)
				assert.Equal(t, "Keep me", product.Notes)

				return nil
			})
	})

	product, err := fx.service.UpdateProduct(ctx, ownerID, 4, 7, input)

	require.NoError(t, err)
	assert.Equal(t, 399.99, product.Price)
	assert.Equal(t, entity.PriorityHigh, product.Priority)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := &entity.Wishlist{ID: 4, UserID: ownerID}
	existing := &entity.Product{ID: 7, WishlistID: 4, Name: "Camera"}

	expectProductTx(t, fx, ctx, owned, func(productRepo *mockRepo.MockProductRepository) {
		productRepo.EXPECT().FindByID(ctx, int64(4), int64(7)).Return(existing, nil)
		productRepo.EXPECT().Delete(ctx, int64(4), int64(7)).Return(nil)
	})

	err := fx.service.DeleteProduct(ctx, ownerID, 4, 7)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_ForeignWishlistLooksAbsent(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 4, UserID: uuid.New()}

	expectProductTx(t, fx, ctx, foreign, nil)

	err := fx.service.DeleteProduct(ctx, uuid.New(), 4, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}
