package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/utils"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) collection(kind entity.ListingKind) (*firestore.CollectionRef, error) {
	if !kind.Valid() {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown listing kind %q", kind), nil)
	}
	return r.client.Collection(kind.Collection()), nil
}

func (r *firestoreListingRepository) ListAll(ctx context.Context, kind entity.ListingKind) ([]*entity.Listing, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	docs, err := col.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while listing %s: %v", kind.Collection(), err)
		return nil, errors.Internal("Failed to list "+string(kind)+" listings", err)
	}

	return toListings(kind, docs), nil
}

func (r *firestoreListingRepository) ListByField(ctx context.Context, kind entity.ListingKind, field string, value interface{}) ([]*entity.Listing, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	docs, err := col.Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while querying %s by %s: %v", kind.Collection(), field, err)
		return nil, errors.Internal("Failed to query "+string(kind)+" listings", err)
	}

	return toListings(kind, docs), nil
}

func (r *firestoreListingRepository) ListCreatedBetween(ctx context.Context, kind entity.ListingKind, from, to time.Time) ([]*entity.Listing, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	docs, err := col.
		Where("createdAt", ">=", from).
		Where("createdAt", "<=", to).
		Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while listing recent %s: %v", kind.Collection(), err)
		return nil, errors.Internal("Failed to list recent listings", err)
	}

	return toListings(kind, docs), nil
}

func (r *firestoreListingRepository) FindLatestByVendor(ctx context.Context, kind entity.ListingKind, vendorID string) (*entity.Listing, error) {
	listings, err := r.ListByField(ctx, kind, "vendor.uid", vendorID)
	if err != nil {
		return nil, err
	}

	var latest *entity.Listing
	var latestAt time.Time
	for _, listing := range listings {
		createdAt, _ := utils.Time(listing.Data["createdAt"])
		if latest == nil || createdAt.After(latestAt) {
			latest, latestAt = listing, createdAt
		}
	}

	return latest, nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	doc, err := col.Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get listing", err)
	}
	if !doc.Exists() {
		return nil, nil
	}

	return entity.NewListing(kind, doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreListingRepository) Create(ctx context.Context, kind entity.ListingKind, id string, data map[string]interface{}) (*entity.Listing, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	ref := col.NewDoc()
	if id != "" {
		ref = col.Doc(id)
	}

	if _, err := ref.Set(ctx, data); err != nil {
		return nil, errors.Internal("Failed to create listing", err)
	}

	logger.Info("Created %s listing %s", kind, ref.ID)
	return entity.NewListing(kind, ref.ID, data), nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, kind entity.ListingKind, id string, fields map[string]interface{}) error {
	col, err := r.collection(kind)
	if err != nil {
		return err
	}

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := col.Doc(id).Update(ctx, updates); err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Listing", err)
		}
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, kind entity.ListingKind, id string) error {
	col, err := r.collection(kind)
	if err != nil {
		return err
	}

	if _, err := col.Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	logger.Info("Deleted %s listing %s", kind, id)
	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, kind entity.ListingKind, id string) error {
	return r.Update(ctx, kind, id, map[string]interface{}{
		"viewCount": firestore.Increment(1),
	})
}
