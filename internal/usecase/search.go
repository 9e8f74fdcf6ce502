package usecase

import (
	"strings"

	"huhu/internal/domain/entity"
)

// FilterListings keeps listings whose search fields contain query, ignoring
// case. An empty query keeps everything; the input order is preserved.
func FilterListings(listings []*entity.Listing, query string) []*entity.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listings
	}

	filtered := make([]*entity.Listing, 0, len(listings))
	for _, listing := range listings {
		if matchesQuery(listing, query) {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

func matchesQuery(listing *entity.Listing, query string) bool {
	for _, field := range searchFieldsFor(listing.Kind) {
		v, ok := field.Value(listing)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(textOf(v)), query) {
			return true
		}
	}
	return false
}
