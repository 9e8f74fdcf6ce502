package service

import (
	"context"
	"io"

	"huhu/internal/domain/entity"
)

// ImageStore keeps listing images in public object storage.
type ImageStore interface {
	// Upload writes r under objectPath and returns the stored image with its public URL.
	Upload(ctx context.Context, r io.Reader, objectPath, contentType string) (*entity.ListingImage, error)
	Delete(ctx context.Context, fileURL string) error
	Close() error
}
