package repository

import (
	"context"

	"huhu/internal/domain/entity"
)

type VendorRepository interface {
	// GetByID returns nil, nil when no vendor profile exists.
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	ListAll(ctx context.Context) ([]*entity.Vendor, error)
}
