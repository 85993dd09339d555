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

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// productResponse is the wire representation of a product. The owning
// wishlist is implied by the URL and not repeated in the body.
type productResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Priority string  `json:"priority,omitempty"`
	Price    float64 `json:"price"`
	Link     string  `json:"link,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:       product.ID,
		Name:     product.Name,
		Priority: product.Priority.String(),
		Price:    product.Price,
		Link:     product.Link,
		Notes:    product.Notes,
	}
}

func toProductListResponse(products []*entity.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	return resp
}

// List returns every product of a wishlist, newest first.
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), userID, wishlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductListResponse(products))
}

// Create adds a product to a wishlist.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	input := new(usecase.ProductInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, wishlistID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "product_id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), userID, wishlistID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// Update applies a partial update to a product.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "product_id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateProductInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, wishlistID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// Delete removes a product from its wishlist.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	wishlistID, err := pathID(c, "wishlist_id", domainerrors.ErrWishlistNotFound)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "product_id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, wishlistID, productID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
