package impl

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	mockRepo "wishlist/internal/mocks/repository"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectOwnershipLookup wires a transaction whose wishlist lookup returns the
// given result, which is all the ownership guard needs.
func expectOwnershipLookup(t *testing.T, fx wishlistServiceFixtures, ctx context.Context, wishlistID int64, found *entity.Wishlist, findErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockWishlistRepo.EXPECT().FindByID(ctx, wishlistID).Return(found, findErr)

			return fn(mockFactory)
		})
}

func TestWishlistService_GetWishlist_NotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	expectOwnershipLookup(t, fx, ctx, 42, nil, repository.ErrWishlistNotFound)

	wishlist, err := fx.service.GetWishlist(ctx, uuid.New(), 42)

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_GetWishlist_OtherOwnerLooksAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 42, UserID: uuid.New(), Title: "Not yours"}
	expectOwnershipLookup(t, fx, ctx, 42, foreign, nil)

	wishlist, err := fx.service.GetWishlist(ctx, uuid.New(), 42)

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_UpdateWishlist_OtherOwnerLooksAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 8, UserID: uuid.New(), Title: "Not yours"}
	expectOwnershipLookup(t, fx, ctx, 8, foreign, nil)

	newTitle := "Hijacked"
	wishlist, err := fx.service.UpdateWishlist(ctx, uuid.New(), 8, &usecase.UpdateWishlistInput{Title: &newTitle})

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_DeleteWishlist_OtherOwnerLooksAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 8, UserID: uuid.New(), Title: "Not yours"}
	expectOwnershipLookup(t, fx, ctx, 8, foreign, nil)

	err := fx.service.DeleteWishlist(ctx, uuid.New(), 8)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_CreateWishlist_InvalidDate(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	input := &usecase.CreateWishlistInput{
		Title:        "Birthday",
		OccasionDate: "not-a-date",
	}

	wishlist, err := fx.service.CreateWishlist(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWishlistService_CreateWishlist_ProductAttachFails(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateWishlistInput{
		Title:    "Birthday",
		Products: []usecase.ProductInput{{Name: "Camera"}},
	}
	attachErr := errors.New("insert failed")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().WishlistRepo().Return(mockWishlistRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockWishlistRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Wishlist")).Return(nil)
			mockProductRepo.EXPECT().
				FindOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil, attachErr)

			return fn(mockFactory)
		})

	wishlist, err := fx.service.CreateWishlist(ctx, ownerID, input)

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, attachErr)
}

func TestWishlistService_ResolveShare_BadPayloadLooksAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	fx.qrcodeService.EXPECT().
		ParseShareQR("not-a-share-payload").
		Return(int64(0), errors.New("unmarshal failed"))

	wishlist, err := fx.service.ResolveShare(context.Background(), "not-a-share-payload")

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_ResolveShare_UnknownWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	qrData := `{"wishlist_id":"99","type":"wishlist-share"}`

	fx.qrcodeService.EXPECT().ParseShareQR(qrData).Return(int64(99), nil)
	expectOwnershipLookup(t, fx, ctx, 99, nil, repository.ErrWishlistNotFound)

	wishlist, err := fx.service.ResolveShare(ctx, qrData)

	require.Error(t, err)
	assert.Nil(t, wishlist)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistService_GenerateShareQR_OtherOwnerLooksAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	foreign := &entity.Wishlist{ID: 3, UserID: uuid.New(), Title: "Not yours"}
	expectOwnershipLookup(t, fx, ctx, 3, foreign, nil)

	data, err := fx.service.GenerateShareQR(ctx, uuid.New(), 3)

	require.Error(t, err)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}
