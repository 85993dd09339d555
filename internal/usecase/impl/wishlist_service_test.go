package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wishlist/internal/domain/entity"
	"wishlist/internal/domain/repository"
	mockRepo "wishlist/internal/mocks/repository"
	mockService "wishlist/internal/mocks/service"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service       usecase.WishlistUsecase
	txManager     *mockRepo.MockTransactionManager
	qrcodeService *mockService.MockQRCodeService
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewWishlistService(txManager, qrcodeService, logger)

	return wishlistServiceFixtures{
		service:       service,
		txManager:     txManager,
		qrcodeService: qrcodeService,
	}
}

func TestWishlistService_ListWishlists_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := []*entity.Wishlist{
		{ID: 2, UserID: ownerID, Title: "Housewarming"},
		{ID: 1, UserID: ownerID, Title: "Birthday"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByOwner(ctx, ownerID).Return(expected, nil)

			return fn(mockFactory)
		})

	wishlists, err := fx.service.ListWishlists(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, wishlists)
}

func TestWishlistService_CreateWishlist_WithNestedProducts(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateWishlistInput{
		Title:        "Birthday",
		Description:  "My 30th",
		OccasionDate: "2026-10-01",
		Address:      "12 Main St",
		Products: []usecase.ProductInput{
			{Name: "Camera", Priority: "HIGH", Price: 450.00},
			{Name: "Socks", Priority: "LOW"},
		},
	}

	occasionDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Wishlist{
		ID:           7,
		UserID:       ownerID,
		Title:        "Birthday",
		Description:  "My 30th",
		OccasionDate: &occasionDate,
		Address:      "12 Main St",
		Products: []*entity.Product{
			{ID: 1, WishlistID: 7, Name: "Camera", Priority: entity.PriorityHigh, Price: 450.00},
			{ID: 2, WishlistID: 7, Name: "Socks", Priority: entity.PriorityLow},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockWishlistRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Wishlist")).
				RunAndReturn(func(_ context.Context, wishlist *entity.Wishlist) error {
					assert.Equal(t, ownerID, wishlist.UserID)
					wishlist.ID = 7

					return nil
				})

			var nextID int64
			mockProductRepo.EXPECT().
				FindOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				RunAndReturn(func(_ context.Context, product *entity.Product) (*entity.Product, error) {
					assert.Equal(t, int64(7), product.WishlistID)
					nextID++
					created := *product
					created.ID = nextID

					return &created, nil
				}).
				Times(2)

			mockWishlistRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

			return fn(mockFactory)
		})

	wishlist, err := fx.service.CreateWishlist(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), wishlist.ID)
	assert.Equal(t, ownerID, wishlist.UserID)
	assert.Equal(t, "Birthday", wishlist.Title)
	require.NotNil(t, wishlist.OccasionDate)
	assert.Equal(t, occasionDate, *wishlist.OccasionDate)
	require.Len(t, wishlist.Products, 2)
	assert.Equal(t, int64(7), wishlist.Products[0].WishlistID)
	assert.Equal(t, "Camera", wishlist.Products[0].Name)
	assert.Equal(t, entity.PriorityHigh, wishlist.Products[0].Priority)
	assert.Equal(t, "Socks", wishlist.Products[1].Name)
}

func TestWishlistService_CreateWishlist_DuplicateItemsCollapse(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateWishlistInput{
		Title: "Birthday",
		Products: []usecase.ProductInput{
			{Name: "Camera", Priority: "HIGH", Price: 450.00},
			{Name: "Camera", Priority: "HIGH", Price: 450.00},
		},
	}

	camera := &entity.Product{ID: 1, WishlistID: 7, Name: "Camera", Priority: entity.PriorityHigh, Price: 450.00}
	stored := &entity.Wishlist{
		ID:       7,
		UserID:   ownerID,
		Title:    "Birthday",
		Products: []*entity.Product{camera},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockWishlistRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Wishlist")).
				RunAndReturn(func(_ context.Context, wishlist *entity.Wishlist) error {
					wishlist.ID = 7

					return nil
				})

			// Both payload items resolve to the same stored product.
			mockProductRepo.EXPECT().
				FindOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				Return(camera, nil).
				Times(2)

			mockWishlistRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

			return fn(mockFactory)
		})

	wishlist, err := fx.service.CreateWishlist(ctx, ownerID, input)

	require.NoError(t, err)
	require.Len(t, wishlist.Products, 1)
	assert.Equal(t, "Camera", wishlist.Products[0].Name)
}

func TestWishlistService_GetWishlist_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := &entity.Wishlist{
		ID:     5,
		UserID: ownerID,
		Title:  "Wedding",
		Products: []*entity.Product{
			{ID: 3, WishlistID: 5, Name: "Toaster"},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(5)).Return(expected, nil)

			return fn(mockFactory)
		})

	wishlist, err := fx.service.GetWishlist(ctx, ownerID, 5)

	require.NoError(t, err)
	assert.Equal(t, expected, wishlist)
}

func TestWishlistService_UpdateWishlist_PartialScalars(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	newTitle := "Renamed"
	input := &usecase.UpdateWishlistInput{Title: &newTitle}

	existing := &entity.Wishlist{
		ID:          9,
		UserID:      ownerID,
		Title:       "Original",
		Description: "Keep me",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(9)).Return(existing, nil)
			mockWishlistRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Wishlist")).
				RunAndReturn(func(_ context.Context, wishlist *entity.Wishlist) error {
					assert.Equal(t, "Renamed", wishlist.Title)
					assert.Equal(t, "Keep me", wishlist.Description)
					assert.Equal(t, ownerID, wishlist.UserID)

					return nil
				})

			return fn(mockFactory)
		})

	wishlist, err := fx.service.UpdateWishlist(ctx, ownerID, 9, input)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", wishlist.Title)
	assert.Equal(t, "Keep me", wishlist.Description)
}

func TestWishlistService_UpdateWishlist_EmptyProductsClearsAll(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	empty := []usecase.ProductInput{}
	input := &usecase.UpdateWishlistInput{Products: &empty}

	existing := &entity.Wishlist{
		ID:     4,
		UserID: ownerID,
		Title:  "Birthday",
		Products: []*entity.Product{
			{ID: 1, WishlistID: 4, Name: "Camera"},
			{ID: 2, WishlistID: 4, Name: "Socks"},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockWishlistRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil).Once()
			mockWishlistRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Wishlist")).Return(nil)
			mockProductRepo.EXPECT().DeleteByWishlist(ctx, int64(4)).Return(nil)
			mockWishlistRepo.EXPECT().
				FindByID(ctx, int64(4)).
				Return(&entity.Wishlist{ID: 4, UserID: ownerID, Title: "Birthday"}, nil).
				Once()

			return fn(mockFactory)
		})

	wishlist, err := fx.service.UpdateWishlist(ctx, ownerID, 4, input)

	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)
}

func TestWishlistService_UpdateWishlist_AdditiveProducts(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	extra := []usecase.ProductInput{
		{Name: "Headphones", Priority: "MEDIUM", Price: 120},
	}
	input := &usecase.UpdateWishlistInput{Products: &extra}

	existing := &entity.Wishlist{
		ID:     4,
		UserID: ownerID,
		Title:  "Birthday",
		Products: []*entity.Product{
			{ID: 1, WishlistID: 4, Name: "Camera"},
		},
	}
	reloaded := &entity.Wishlist{
		ID:     4,
		UserID: ownerID,
		Title:  "Birthday",
		Products: []*entity.Product{
			{ID: 2, WishlistID: 4, Name: "Headphones"},
			{ID: 1, WishlistID: 4, Name: "Camera"},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockWishlistRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil).Once()
			mockWishlistRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Wishlist")).Return(nil)
			mockProductRepo.EXPECT().
				FindOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				RunAndReturn(func(_ context.Context, product *entity.Product) (*entity.Product, error) {
					assert.Equal(t, int64(4), product.WishlistID)
					assert.Equal(t, "Headphones", product.Name)
					created := *product
					created.ID = 2

					return &created, nil
				})
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(4)).Return(reloaded, nil).Once()

			return fn(mockFactory)
		})

	wishlist, err := fx.service.UpdateWishlist(ctx, ownerID, 4, input)

	require.NoError(t, err)
	require.Len(t, wishlist.Products, 2)
	assert.Equal(t, "Headphones", wishlist.Products[0].Name)
	assert.Equal(t, "Camera", wishlist.Products[1].Name)
}

func TestWishlistService_UpdateWishlist_NilProductsLeavesSetAlone(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	newDescription := "Updated"
	input := &usecase.UpdateWishlistInput{Description: &newDescription}

	existing := &entity.Wishlist{
		ID:     4,
		UserID: ownerID,
		Title:  "Birthday",
		Products: []*entity.Product{
			{ID: 1, WishlistID: 4, Name: "Camera"},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			// No ProductRepo expectation: the product set must not be touched.
			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
			mockWishlistRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Wishlist")).Return(nil)

			return fn(mockFactory)
		})

	wishlist, err := fx.service.UpdateWishlist(ctx, ownerID, 4, input)

	require.NoError(t, err)
	assert.Equal(t, "Updated", wishlist.Description)
	require.Len(t, wishlist.Products, 1)
	assert.Equal(t, "Camera", wishlist.Products[0].Name)
}

func TestWishlistService_DeleteWishlist_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Wishlist{ID: 6, UserID: ownerID, Title: "Old"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(6)).Return(existing, nil)
			mockWishlistRepo.EXPECT().Delete(ctx, int64(6)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteWishlist(ctx, ownerID, 6)

	require.NoError(t, err)
}

func TestWishlistService_GenerateShareQR_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Wishlist{ID: 3, UserID: ownerID, Title: "Shared"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil)

			return fn(mockFactory)
		})
	fx.qrcodeService.EXPECT().GenerateShareQR(int64(3)).Return(png, nil)

	data, err := fx.service.GenerateShareQR(ctx, ownerID, 3)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestWishlistService_ResolveShare_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	qrData := `{"wishlist_id":"3","type":"wishlist-share"}`
	shared := &entity.Wishlist{ID: 3, UserID: uuid.New(), Title: "Shared"}

	fx.qrcodeService.EXPECT().ParseShareQR(qrData).Return(int64(3), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, int64(3)).Return(shared, nil)

			return fn(mockFactory)
		})

	// No owner is involved: a scanned payload resolves anyone's wishlist.
	wishlist, err := fx.service.ResolveShare(ctx, qrData)

	require.NoError(t, err)
	assert.Equal(t, shared, wishlist)
}
