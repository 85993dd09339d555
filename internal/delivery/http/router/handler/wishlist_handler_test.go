package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/validator"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWishlistUsecase lets each test plug in just the operation it exercises.
type stubWishlistUsecase struct {
	listFn    func(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error)
	createFn  func(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWishlistInput) (*entity.Wishlist, error)
	getFn     func(ctx context.Context, ownerID uuid.UUID, wishlistID int64) (*entity.Wishlist, error)
	updateFn  func(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *usecase.UpdateWishlistInput) (*entity.Wishlist, error)
	deleteFn  func(ctx context.Context, ownerID uuid.UUID, wishlistID int64) error
	shareQRFn func(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]byte, error)
	resolveFn func(ctx context.Context, qrData string) (*entity.Wishlist, error)
}

func (s *stubWishlistUsecase) ListWishlists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wishlist, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubWishlistUsecase) CreateWishlist(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWishlistInput) (*entity.Wishlist, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubWishlistUsecase) GetWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) (*entity.Wishlist, error) {
	return s.getFn(ctx, ownerID, wishlistID)
}

func (s *stubWishlistUsecase) UpdateWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64, input *usecase.UpdateWishlistInput) (*entity.Wishlist, error) {
	return s.updateFn(ctx, ownerID, wishlistID, input)
}

func (s *stubWishlistUsecase) DeleteWishlist(ctx context.Context, ownerID uuid.UUID, wishlistID int64) error {
	return s.deleteFn(ctx, ownerID, wishlistID)
}

func (s *stubWishlistUsecase) GenerateShareQR(ctx context.Context, ownerID uuid.UUID, wishlistID int64) ([]byte, error) {
	return s.shareQRFn(ctx, ownerID, wishlistID)
}

func (s *stubWishlistUsecase) ResolveShare(ctx context.Context, qrData string) (*entity.Wishlist, error) {
	return s.resolveFn(ctx, qrData)
}

func newTestContext(t *testing.T, method, target string, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWishlistHandler_Get_Success(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubWishlistUsecase{
		getFn: func(_ context.Context, gotOwner uuid.UUID, wishlistID int64) (*entity.Wishlist, error) {
			assert.Equal(t, ownerID, gotOwner)
			assert.Equal(t, int64(5), wishlistID)

			return &entity.Wishlist{
				ID:     5,
				UserID: ownerID,
				Title:  "Birthday",
				Products: []*entity.Product{
					{ID: 1, WishlistID: 5, Name: "Camera", Priority: entity.PriorityHigh, Price: 450},
				},
			}, nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodGet, "/wishlists/5", "", ownerID)
	c.SetParamNames("wishlist_id")
	c.SetParamValues("5")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"title":"Birthday"`)
	assert.Contains(t, body, `"name":"Camera"`)
	assert.Contains(t, body, `"priority":"HIGH"`)
	assert.Contains(t, body, `"request_id"`)
}

func TestWishlistHandler_Get_MalformedIDLooksAbsent(t *testing.T) {
	h := NewWishlistHandler(&stubWishlistUsecase{}, discardLogger())

	c, _ := newTestContext(t, http.MethodGet, "/wishlists/abc", "", uuid.New())
	c.SetParamNames("wishlist_id")
	c.SetParamValues("abc")

	err := h.Get(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistNotFound)
}

func TestWishlistHandler_Create_BindsNestedProducts(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubWishlistUsecase{
		createFn: func(_ context.Context, gotOwner uuid.UUID, input *usecase.CreateWishlistInput) (*entity.Wishlist, error) {
			assert.Equal(t, ownerID, gotOwner)
			assert.Equal(t, "Birthday", input.Title)
			require.Len(t, input.Products, 2)
			assert.Equal(t, "Camera", input.Products[0].Name)

			return &entity.Wishlist{ID: 7, UserID: ownerID, Title: input.Title}, nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	payload := `{"title":"Birthday","products":[{"name":"Camera","priority":"HIGH","price":450},{"name":"Socks"}]}`
	c, rec := newTestContext(t, http.MethodPost, "/wishlists", payload, ownerID)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestWishlistHandler_Create_RejectsMissingTitle(t *testing.T) {
	h := NewWishlistHandler(&stubWishlistUsecase{}, discardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/wishlists", `{"description":"no title"}`, uuid.New())

	err := h.Create(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestWishlistHandler_Update_EmptyProductsListReachesUsecase(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubWishlistUsecase{
		updateFn: func(_ context.Context, _ uuid.UUID, wishlistID int64, input *usecase.UpdateWishlistInput) (*entity.Wishlist, error) {
			assert.Equal(t, int64(4), wishlistID)
			require.NotNil(t, input.Products)
			assert.Empty(t, *input.Products)
			assert.Nil(t, input.Title)

			return &entity.Wishlist{ID: 4, UserID: ownerID, Title: "Birthday"}, nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodPatch, "/wishlists/4", `{"products":[]}`, ownerID)
	c.SetParamNames("wishlist_id")
	c.SetParamValues("4")

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}

func TestWishlistHandler_Delete_NoContent(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubWishlistUsecase{
		deleteFn: func(_ context.Context, _ uuid.UUID, wishlistID int64) error {
			assert.Equal(t, int64(6), wishlistID)

			return nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/wishlists/6", "", ownerID)
	c.SetParamNames("wishlist_id")
	c.SetParamValues("6")

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlistHandler_ShareQR_ReturnsPNG(t *testing.T) {
	ownerID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc := &stubWishlistUsecase{
		shareQRFn: func(_ context.Context, _ uuid.UUID, wishlistID int64) ([]byte, error) {
			assert.Equal(t, int64(3), wishlistID)

			return png, nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	c, rec := newTestContext(t, http.MethodGet, "/wishlists/3/qrcode", "", ownerID)
	c.SetParamNames("wishlist_id")
	c.SetParamValues("3")

	require.NoError(t, h.ShareQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestWishlistHandler_ResolveShare_ReturnsWishlist(t *testing.T) {
	ownerID := uuid.New()
	uc := &stubWishlistUsecase{
		resolveFn: func(_ context.Context, qrData string) (*entity.Wishlist, error) {
			assert.Equal(t, `{"wishlist_id":"3","type":"wishlist-share"}`, qrData)

			return &entity.Wishlist{ID: 3, UserID: ownerID, Title: "Shared"}, nil
		},
	}
	h := NewWishlistHandler(uc, discardLogger())

	payload := `{"qr_data":"{\"wishlist_id\":\"3\",\"type\":\"wishlist-share\"}"}`
	c, rec := newTestContext(t, http.MethodPost, "/wishlists/shared", payload, uuid.New())

	require.NoError(t, h.ResolveShare(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Shared"`)
}

func TestWishlistHandler_ResolveShare_RejectsMissingPayload(t *testing.T) {
	h := NewWishlistHandler(&stubWishlistUsecase{}, discardLogger())

	c, _ := newTestContext(t, http.MethodPost, "/wishlists/shared", `{}`, uuid.New())

	err := h.ResolveShare(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
