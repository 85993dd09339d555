// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wishlist/internal/delivery/http/middleware"
	"wishlist/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	WishlistHandler *handler.WishlistHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	wishlistHandler *handler.WishlistHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		wishlistHandler: params.WishlistHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Wishlist routes. Everything below is scoped to the authenticated owner.
	wishlistGroup := e.Group("/wishlists")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("", r.wishlistHandler.Create)
		wishlistGroup.GET("/:wishlist_id", r.wishlistHandler.Get)
		wishlistGroup.PATCH("/:wishlist_id", r.wishlistHandler.Update)
		wishlistGroup.PUT("/:wishlist_id", r.wishlistHandler.Update)
		wishlistGroup.DELETE("/:wishlist_id", r.wishlistHandler.Delete)
		wishlistGroup.GET("/:wishlist_id/qrcode", r.wishlistHandler.ShareQR)
		wishlistGroup.POST("/shared", r.wishlistHandler.ResolveShare)

		// Products nested under their wishlist
		wishlistGroup.GET("/:wishlist_id/products", r.productHandler.List)
		wishlistGroup.POST("/:wishlist_id/products", r.productHandler.Create)
		wishlistGroup.GET("/:wishlist_id/products/:product_id", r.productHandler.Get)
		wishlistGroup.PATCH("/:wishlist_id/products/:product_id", r.productHandler.Update)
		wishlistGroup.PUT("/:wishlist_id/products/:product_id", r.productHandler.Update)
		wishlistGroup.DELETE("/:wishlist_id/products/:product_id", r.productHandler.Delete)
	}
}
