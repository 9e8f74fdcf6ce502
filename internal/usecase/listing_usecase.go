package usecase

import (
	"context"
	"time"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
)

// CategoryNew selects products created within the recent-listings window.
const CategoryNew = "new"

var productCategories = map[string]bool{
	"electronics": true,
	"vehicles":    true,
	"books":       true,
	"gaming":      true,
	"furniture":   true,
	"jobs":        true,
	"home":        true,
	"property":    true,
	"properties":  true,
	"fashion":     true,
	"cosmetics":   true,
}

func IsProductCategory(category string) bool {
	return productCategories[category]
}

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	newWindow   time.Duration
	now         func() time.Time
}

func NewListingUseCase(listingRepo repository.ListingRepository, newWindow time.Duration) *ListingUseCase {
	if newWindow <= 0 {
		newWindow = 7 * 24 * time.Hour
	}
	return &ListingUseCase{
		listingRepo: listingRepo,
		newWindow:   newWindow,
		now:         time.Now,
	}
}

// FetchByCategory maps a category slug to a listing query. Unknown slugs
// return every product.
func (uc *ListingUseCase) FetchByCategory(ctx context.Context, category string) ([]*entity.Listing, error) {
	switch {
	case category == "property" || category == "properties":
		return uc.listingRepo.ListAll(ctx, entity.KindProperty)
	case IsProductCategory(category):
		return uc.listingRepo.ListByField(ctx, entity.KindProduct, "category", category)
	case category == CategoryNew:
		now := uc.now()
		return uc.listingRepo.ListCreatedBetween(ctx, entity.KindProduct, now.Add(-uc.newWindow), now)
	default:
		logger.Debug("Category %q not recognised, listing all products", category)
		return uc.listingRepo.ListAll(ctx, entity.KindProduct)
	}
}

func (uc *ListingUseCase) FetchJobs(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.ListAll(ctx, entity.KindJob)
}

func (uc *ListingUseCase) FetchServices(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.ListAll(ctx, entity.KindService)
}

func (uc *ListingUseCase) FetchProperties(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.ListAll(ctx, entity.KindProperty)
}

func (uc *ListingUseCase) GetListing(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (uc *ListingUseCase) GetUserListings(ctx context.Context, userID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByField(ctx, entity.KindProduct, "vendor.uid", userID)
}

func (uc *ListingUseCase) GetUserJobs(ctx context.Context, userID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByField(ctx, entity.KindJob, "vendor.uid", userID)
}

func (uc *ListingUseCase) ProductCards(ctx context.Context, category, query string) ([]entity.ProductCard, error) {
	listings, err := uc.FetchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	listings = FilterListings(listings, query)
	cards := make([]entity.ProductCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, ProductCardOf(l, now))
	}
	return cards, nil
}

func (uc *ListingUseCase) JobCards(ctx context.Context, query string) ([]entity.JobCard, error) {
	listings, err := uc.FetchJobs(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	listings = FilterListings(listings, query)
	cards := make([]entity.JobCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, JobCardOf(l, now))
	}
	return cards, nil
}

func (uc *ListingUseCase) ServiceCards(ctx context.Context, query string) ([]entity.ServiceCard, error) {
	listings, err := uc.FetchServices(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	listings = FilterListings(listings, query)
	cards := make([]entity.ServiceCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, ServiceCardOf(l, now))
	}
	return cards, nil
}

func (uc *ListingUseCase) PropertyCards(ctx context.Context, query string, origin *entity.Coordinates) ([]entity.PropertyCard, error) {
	listings, err := uc.FetchProperties(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	listings = FilterListings(listings, query)
	cards := make([]entity.PropertyCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, PropertyCardOf(l, now, origin))
	}
	return cards, nil
}

// SimilarProperties returns up to limit other properties of the same type.
func (uc *ListingUseCase) SimilarProperties(ctx context.Context, id string, limit int) ([]*entity.Listing, error) {
	target, err := uc.GetListing(ctx, entity.KindProperty, id)
	if err != nil {
		return nil, err
	}

	all, err := uc.FetchProperties(ctx)
	if err != nil {
		return nil, err
	}

	propertyType := propertyFields.Title.String(target)
	similar := make([]*entity.Listing, 0, limit)
	for _, l := range all {
		if len(similar) >= limit {
			break
		}
		if l.ID != id && propertyFields.Title.String(l) == propertyType {
			similar = append(similar, l)
		}
	}
	return similar, nil
}
