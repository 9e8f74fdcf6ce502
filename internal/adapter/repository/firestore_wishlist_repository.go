package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
)

const wishlistsCollection = "wishlists"

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func (r *firestoreWishlistRepository) Load(ctx context.Context, userID string) ([]string, error) {
	doc, err := r.client.Collection(wishlistsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return []string{}, nil
		}
		return nil, errors.Internal("Failed to load wishlist", err)
	}
	if !doc.Exists() {
		return []string{}, nil
	}

	var wishlist entity.Wishlist
	if err := doc.DataTo(&wishlist); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}
	if wishlist.ItemIDs == nil {
		return []string{}, nil
	}

	return wishlist.ItemIDs, nil
}

// AddItem creates the wishlist document on first use.
func (r *firestoreWishlistRepository) AddItem(ctx context.Context, userID, listingID string) error {
	_, err := r.client.Collection(wishlistsCollection).Doc(userID).Set(ctx, map[string]interface{}{
		"itemIds": firestore.ArrayUnion(listingID),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to add to wishlist", err)
	}

	logger.Debug("Added listing %s to wishlist for user %s", listingID, userID)
	return nil
}

func (r *firestoreWishlistRepository) RemoveItem(ctx context.Context, userID, listingID string) error {
	_, err := r.client.Collection(wishlistsCollection).Doc(userID).Set(ctx, map[string]interface{}{
		"itemIds": firestore.ArrayRemove(listingID),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	logger.Debug("Removed listing %s from wishlist for user %s", listingID, userID)
	return nil
}
