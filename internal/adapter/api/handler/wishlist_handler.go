package handler

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	store, err := h.wishlistUseCase.LoadStore(c.Request().Context(), middleware.CurrentUser(c).UID)
	if err != nil {
		return response.Error(c, err)
	}

	items := store.Items()
	return response.List(c, items, len(items))
}

// GetItems returns the saved listings grouped by type.
func (h *WishlistHandler) GetItems(c echo.Context) error {
	items, err := h.wishlistUseCase.ResolveItems(c.Request().Context(), middleware.CurrentUser(c).UID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	listingID := c.Param("listingId")
	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	store := h.wishlistUseCase.Store(middleware.CurrentUser(c).UID)
	if err := store.Add(c.Request().Context(), listingID); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"listing_id":     listingID,
		"is_in_wishlist": true,
	})
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	listingID := c.Param("listingId")
	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	store := h.wishlistUseCase.Store(middleware.CurrentUser(c).UID)
	if err := store.Remove(c.Request().Context(), listingID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing removed from wishlist successfully",
	})
}

func (h *WishlistHandler) ToggleWishlist(c echo.Context) error {
	listingID := c.Param("listingId")
	ctx := c.Request().Context()

	store, err := h.wishlistUseCase.LoadStore(ctx, middleware.CurrentUser(c).UID)
	if err != nil {
		return response.Error(c, err)
	}

	saved, err := store.Toggle(ctx, listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listing_id":     listingID,
		"is_in_wishlist": saved,
	})
}

func (h *WishlistHandler) CheckWishlistStatus(c echo.Context) error {
	listingID := c.Param("listingId")

	store, err := h.wishlistUseCase.LoadStore(c.Request().Context(), middleware.CurrentUser(c).UID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listing_id":     listingID,
		"is_in_wishlist": store.Contains(listingID),
	})
}
