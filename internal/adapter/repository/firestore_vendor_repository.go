package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
)

const vendorsCollection = "vendors"

type firestoreVendorRepository struct {
	client *firestore.Client
}

func NewFirestoreVendorRepository(client *firestore.Client) repository.VendorRepository {
	return &firestoreVendorRepository{client: client}
}

func (r *firestoreVendorRepository) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	doc, err := r.client.Collection(vendorsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get vendor", err)
	}
	if !doc.Exists() {
		return nil, nil
	}

	return &entity.Vendor{ID: doc.Ref.ID, Data: doc.Data()}, nil
}

func (r *firestoreVendorRepository) ListAll(ctx context.Context) ([]*entity.Vendor, error) {
	docs, err := r.client.Collection(vendorsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list vendors", err)
	}

	vendors := make([]*entity.Vendor, 0, len(docs))
	for _, doc := range docs {
		vendors = append(vendors, &entity.Vendor{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return vendors, nil
}
