package usecase

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
)

// ErrNoUser is returned by wishlist writes made without a signed-in user.
var ErrNoUser = errors.Unauthorized("Sign in to use the wishlist", nil)

const resolveConcurrency = 8

// WishlistStore is one user's saved listing ids. Contains answers from the
// last loaded set; writes update it only after the backend accepts them.
type WishlistStore struct {
	repo   repository.WishlistRepository
	userID string

	mu    sync.RWMutex
	items map[string]struct{}
}

func NewWishlistStore(repo repository.WishlistRepository, userID string) *WishlistStore {
	return &WishlistStore{
		repo:   repo,
		userID: userID,
		items:  make(map[string]struct{}),
	}
}

// Load replaces the local set with the stored one. Without a user the set is empty.
func (s *WishlistStore) Load(ctx context.Context) ([]string, error) {
	if s.userID == "" {
		s.replace(nil)
		return []string{}, nil
	}

	ids, err := s.repo.Load(ctx, s.userID)
	if err != nil {
		return nil, err
	}

	s.replace(ids)
	return s.Items(), nil
}

func (s *WishlistStore) Add(ctx context.Context, listingID string) error {
	if s.userID == "" {
		return ErrNoUser
	}
	if listingID == "" {
		return errors.BadRequest("Listing ID is required", nil)
	}

	if err := s.repo.AddItem(ctx, s.userID, listingID); err != nil {
		logger.Error("Error adding %s to wishlist of %s: %v", listingID, s.userID, err)
		return err
	}

	s.mu.Lock()
	s.items[listingID] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *WishlistStore) Remove(ctx context.Context, listingID string) error {
	if s.userID == "" {
		return ErrNoUser
	}
	if listingID == "" {
		return errors.BadRequest("Listing ID is required", nil)
	}

	if err := s.repo.RemoveItem(ctx, s.userID, listingID); err != nil {
		logger.Error("Error removing %s from wishlist of %s: %v", listingID, s.userID, err)
		return err
	}

	s.mu.Lock()
	delete(s.items, listingID)
	s.mu.Unlock()
	return nil
}

// Toggle removes listingID when present and adds it otherwise. It reports
// whether the listing is saved after the call.
func (s *WishlistStore) Toggle(ctx context.Context, listingID string) (bool, error) {
	if s.Contains(listingID) {
		if err := s.Remove(ctx, listingID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.Add(ctx, listingID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WishlistStore) Contains(listingID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[listingID]
	return ok
}

// Items returns the local set sorted for stable output.
func (s *WishlistStore) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *WishlistStore) replace(ids []string) {
	items := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		items[id] = struct{}{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	listingRepo  repository.ListingRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	listingRepo repository.ListingRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		listingRepo:  listingRepo,
	}
}

// Store returns a store bound to userID. An empty userID yields a store
// that rejects writes.
func (uc *WishlistUseCase) Store(userID string) *WishlistStore {
	return NewWishlistStore(uc.wishlistRepo, userID)
}

// LoadStore returns a store with the user's saved ids already loaded.
func (uc *WishlistUseCase) LoadStore(ctx context.Context, userID string) (*WishlistStore, error) {
	store := uc.Store(userID)
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// ResolveItems looks each saved id up in products, then in properties. Ids
// found in neither are reported as missing.
func (uc *WishlistUseCase) ResolveItems(ctx context.Context, userID string) (*entity.WishlistItems, error) {
	store, err := uc.LoadStore(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := store.Items()

	resolved := make([]*entity.Listing, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			listing, err := uc.listingRepo.GetByID(gctx, entity.KindProduct, id)
			if err != nil {
				return err
			}
			if listing == nil {
				listing, err = uc.listingRepo.GetByID(gctx, entity.KindProperty, id)
				if err != nil {
					return err
				}
			}
			resolved[i] = listing
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := &entity.WishlistItems{
		Products:   map[string][]*entity.Listing{},
		Properties: []*entity.Listing{},
	}
	for i, listing := range resolved {
		switch {
		case listing == nil:
			items.Missing = append(items.Missing, ids[i])
		case listing.Kind == entity.KindProperty:
			items.Properties = append(items.Properties, listing)
		default:
			itemType := textOf(listing.Data["itemType"])
			if itemType == "" {
				itemType = "others"
			}
			items.Products[itemType] = append(items.Products[itemType], listing)
		}
	}

	return items, nil
}
