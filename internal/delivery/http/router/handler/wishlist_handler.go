package handler

import (
	"log/slog"
	"net/http"

	"wishlist/internal/delivery/http/response"
	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist-related handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// wishlistResponse is the wire representation of a full wishlist aggregate,
// used by detail endpoints. The owner is implied by the authenticated caller
// and never serialized.
type wishlistResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	OccasionDate string            `json:"occasion_date,omitempty"`
	Address      string            `json:"address,omitempty"`
	Products     []productResponse `json:"products"`
}

func toWishlistResponse(wishlist *entity.Wishlist) wishlistResponse {
	resp := wishlistResponse{
		ID:          wishlist.ID,
		Title:       wishlist.Title,
		Description: wishlist.Description,
		Address:     wishlist.Address,
		Products:    make([]productResponse, 0, len(wishlist.Products)),
	}
	if wishlist.OccasionDate != nil {
		resp.OccasionDate = wishlist.OccasionDate.Format("2006-01-02")
	}
	for _, product := range wishlist.Products {
		resp.Products = append(resp.Products, toProductResponse(product))
	}

	return resp
}

// wishlistListItemResponse is the slimmer shape used by the list endpoint.
type wishlistListItemResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	OccasionDate string            `json:"occasion_date,omitempty"`
	Products     []productResponse `json:"products"`
}

func toWishlistListResponse(wishlists []*entity.Wishlist) []wishlistListItemResponse {
	resp := make([]wishlistListItemResponse, 0, len(wishlists))
	for _, wishlist := range wishlists {
		item := wishlistListItemResponse{
			ID:       wishlist.ID,
			Title:    wishlist.Title,
			Products: make([]productResponse, 0, len(wishlist.Products)),
		}
		if wishlist.OccasionDate != nil {
			item.OccasionDate = wishlist.OccasionDate.Format("2006-01-02")
		}
		for _, product := range wishlist.Products {
			item.Products = append(item.Products, toProductResponse(product))
		}
		resp = append(resp, item)
	}

	return resp
}

// List returns every wishlist of the authenticated user, newest first.
func (h *WishlistHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlists, err := h.uc.ListWishlists(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistListResponse(wishlists))
}

// Create creates a wishlist, optionally with nested products.
func (h *WishlistHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateWishlistInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.CreateWishlist(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWishlistResponse(wishlist))
}

// Get returns a single wishlist with its products.
func (h *WishlistHandler) Get(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	wishlist, err := h.uc.GetWishlist(c.Request().Context(), userID, wishlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistResponse(wishlist))
}

// Update applies a partial update to a wishlist and its product set.
func (h *WishlistHandler) Update(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateWishlistInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.UpdateWishlist(c.Request().Context(), userID, wishlistID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistResponse(wishlist))
}

// Delete removes a wishlist and everything in it.
func (h *WishlistHandler) Delete(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteWishlist(c.Request().Context(), userID, wishlistID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR renders a QR code PNG that encodes a share link for the wishlist.
func (h *WishlistHandler) ShareQR(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), userID, wishlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// resolveShareInput carries a scanned share payload.
type resolveShareInput struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ResolveShare decodes a scanned share payload and returns the wishlist it
// points at, regardless of who owns it.
func (h *WishlistHandler) ResolveShare(c echo.Context) error {
	if _, err := authenticatedUserID(c); err != nil {
		return err
	}

	input := new(resolveShareInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid share payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	wishlist, err := h.uc.ResolveShare(c.Request().Context(), input.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistResponse(wishlist))
}
