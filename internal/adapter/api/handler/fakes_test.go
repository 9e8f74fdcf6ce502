package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"huhu/internal/domain/entity"
)

type fakeListingRepo struct {
	mu    sync.Mutex
	docs  map[entity.ListingKind]map[string]map[string]interface{}
	views map[string]int
	err   error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		docs:  map[entity.ListingKind]map[string]map[string]interface{}{},
		views: map[string]int{},
	}
}

func (r *fakeListingRepo) put(kind entity.ListingKind, id string, data map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.docs[kind] == nil {
		r.docs[kind] = map[string]map[string]interface{}{}
	}
	r.docs[kind][id] = data
}

func (r *fakeListingRepo) ListAll(ctx context.Context, kind entity.ListingKind) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]string, 0, len(r.docs[kind]))
	for id := range r.docs[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.NewListing(kind, id, r.docs[kind][id]))
	}
	return out, nil
}

func (r *fakeListingRepo) ListByField(ctx context.Context, kind entity.ListingKind, field string, value interface{}) ([]*entity.Listing, error) {
	all, err := r.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	var out []*entity.Listing
	for _, l := range all {
		if v, ok := l.Field(field); ok && v == value {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListCreatedBetween(ctx context.Context, kind entity.ListingKind, from, to time.Time) ([]*entity.Listing, error) {
	return r.ListAll(ctx, kind)
}

func (r *fakeListingRepo) FindLatestByVendor(ctx context.Context, kind entity.ListingKind, vendorID string) (*entity.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, kind entity.ListingKind, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	data, ok := r.docs[kind][id]
	if !ok {
		return nil, nil
	}
	return entity.NewListing(kind, id, data), nil
}

func (r *fakeListingRepo) Create(ctx context.Context, kind entity.ListingKind, id string, data map[string]interface{}) (*entity.Listing, error) {
	if id == "" {
		id = "generated"
	}
	r.put(kind, id, data)
	return entity.NewListing(kind, id, data), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, kind entity.ListingKind, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range fields {
		r.docs[kind][id][k] = v
	}
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, kind entity.ListingKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs[kind], id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, kind entity.ListingKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id]++
	return nil
}

type fakeConnectionTester struct {
	err error
}

func (f fakeConnectionTester) TestConnection(ctx context.Context) error {
	return f.err
}

type fakeConnectionCounter int

func (f fakeConnectionCounter) ConnectedUsers() int {
	return int(f)
}
