package repository

import (
	"context"
	"time"

	"huhu/internal/domain/entity"
)

type ListingRepository interface {
	// List methods read the whole collection of kind; results are never paged.
	ListAll(ctx context.Context, kind entity.ListingKind) ([]*entity.Listing, error)
	ListByField(ctx context.Context, kind entity.ListingKind, field string, value interface{}) ([]*entity.Listing, error)
	ListCreatedBetween(ctx context.Context, kind entity.ListingKind, from, to time.Time) ([]*entity.Listing, error)

	// FindLatestByVendor returns nil when the vendor has no listing of kind.
	FindLatestByVendor(ctx context.Context, kind entity.ListingKind, vendorID string) (*entity.Listing, error)

	// GetByID returns nil, nil when the document does not exist.
	GetByID(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error)

	// Create stores data under id, or under a generated id when id is empty.
	Create(ctx context.Context, kind entity.ListingKind, id string, data map[string]interface{}) (*entity.Listing, error)
	Update(ctx context.Context, kind entity.ListingKind, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, kind entity.ListingKind, id string) error
	IncrementViews(ctx context.Context, kind entity.ListingKind, id string) error
}
