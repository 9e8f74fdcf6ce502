package repository

import (
	"context"
)

type WishlistRepository interface {
	// Load returns the saved ids, empty when the user has no wishlist yet.
	Load(ctx context.Context, userID string) ([]string, error)

	// AddItem and RemoveItem are set operations; repeating them is harmless.
	AddItem(ctx context.Context, userID, listingID string) error
	RemoveItem(ctx context.Context, userID, listingID string) error
}
