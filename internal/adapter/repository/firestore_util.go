package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huhu/internal/domain/entity"
)

func IsNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}

func isCanceled(err error) bool {
	code := status.Code(err)
	return code == codes.Canceled || code == codes.DeadlineExceeded
}

func toListings(kind entity.ListingKind, docs []*firestore.DocumentSnapshot) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		listings = append(listings, entity.NewListing(kind, doc.Ref.ID, doc.Data()))
	}
	return listings
}
