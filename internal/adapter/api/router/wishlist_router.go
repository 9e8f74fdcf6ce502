package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
	"huhu/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	// All wishlist endpoints require authentication
	wishlistGroup := e.Group("/v1/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)

	wishlistGroup.GET("", wishlistHandler.GetWishlist)
	wishlistGroup.GET("/items", wishlistHandler.GetItems)
	wishlistGroup.POST("/:listingId", wishlistHandler.AddToWishlist)
	wishlistGroup.DELETE("/:listingId", wishlistHandler.RemoveFromWishlist)
	wishlistGroup.POST("/:listingId/toggle", wishlistHandler.ToggleWishlist)
	wishlistGroup.GET("/:listingId/status", wishlistHandler.CheckWishlistStatus)
}
