package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/utils"
)

type fakeListingRepo struct {
	mu      sync.Mutex
	docs    map[entity.ListingKind]map[string]map[string]interface{}
	err     error
	nextID  int
	updates []map[string]interface{}
	views   map[string]int
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

func (r *fakeListingRepo) sorted(kind entity.ListingKind, keep func(map[string]interface{}) bool) []*entity.Listing {
	ids := make([]string, 0, len(r.docs[kind]))
	for id := range r.docs[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	listings := make([]*entity.Listing, 0, len(ids))
	for _, id := range ids {
		if data := r.docs[kind][id]; keep(data) {
			listings = append(listings, entity.NewListing(kind, id, data))
		}
	}
	return listings
}

func (r *fakeListingRepo) ListAll(ctx context.Context, kind entity.ListingKind) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(kind, func(map[string]interface{}) bool { return true }), nil
}

func (r *fakeListingRepo) ListByField(ctx context.Context, kind entity.ListingKind, field string, value interface{}) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(kind, func(data map[string]interface{}) bool {
		v, ok := entity.Lookup(data, field)
		return ok && v == value
	}), nil
}

func (r *fakeListingRepo) ListCreatedBetween(ctx context.Context, kind entity.ListingKind, from, to time.Time) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(kind, func(data map[string]interface{}) bool {
		created, ok := utils.Time(data["createdAt"])
		return ok && !created.Before(from) && !created.After(to)
	}), nil
}

func (r *fakeListingRepo) FindLatestByVendor(ctx context.Context, kind entity.ListingKind, vendorID string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	var latest *entity.Listing
	var latestAt time.Time
	for _, l := range r.sorted(kind, func(data map[string]interface{}) bool {
		v, _ := entity.Lookup(data, "vendor.uid")
		return v == vendorID
	}) {
		created, _ := utils.Time(l.Data["createdAt"])
		if latest == nil || created.After(latestAt) {
			latest, latestAt = l, created
		}
	}
	return latest, nil
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
	if r.err != nil {
		return nil, r.err
	}
	if id == "" {
		r.mu.Lock()
		r.nextID++
		id = fmt.Sprintf("generated-%d", r.nextID)
		r.mu.Unlock()
	}
	r.put(kind, id, data)
	return entity.NewListing(kind, id, data), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, kind entity.ListingKind, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.updates = append(r.updates, fields)
	for k, v := range fields {
		r.docs[kind][id][k] = v
	}
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, kind entity.ListingKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.docs[kind], id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, kind entity.ListingKind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.views[id]++
	return nil
}

type fakeWishlistRepo struct {
	mu     sync.Mutex
	items  map[string][]string
	err    error
	writes int
	reads  int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: map[string][]string{}}
}

func (r *fakeWishlistRepo) Load(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.err != nil {
		return nil, r.err
	}
	return append([]string(nil), r.items[userID]...), nil
}

func (r *fakeWishlistRepo) AddItem(ctx context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.err != nil {
		return r.err
	}
	if !containsID(r.items[userID], listingID) {
		r.items[userID] = append(r.items[userID], listingID)
	}
	return nil
}

func (r *fakeWishlistRepo) RemoveItem(ctx context.Context, userID, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.err != nil {
		return r.err
	}
	kept := r.items[userID][:0]
	for _, id := range r.items[userID] {
		if id != listingID {
			kept = append(kept, id)
		}
	}
	r.items[userID] = kept
	return nil
}

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
	err     error
	// release, when set, blocks ListAll until closed.
	release chan struct{}
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) ListAll(ctx context.Context) ([]*entity.Vendor, error) {
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	vendors := make([]*entity.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		vendors = append(vendors, v)
	}
	return vendors, nil
}

type chatSnapshot struct {
	docs []entity.ChatDocument
	err  error
}

type fakeChatRepo struct {
	mu sync.Mutex

	chatList chan chatSnapshot
	legacy   chan chatSnapshot
	messages chan []*entity.Message

	existing map[string]bool
	created  []entity.SendMessageInput
	updated  []entity.SendMessageInput
	appended []*entity.Message
	writeErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chatList: make(chan chatSnapshot, 4),
		legacy:   make(chan chatSnapshot, 4),
		messages: make(chan []*entity.Message, 4),
		existing: map[string]bool{},
	}
}

func watchChannel(ctx context.Context, ch chan chatSnapshot, fn repository.ChatSnapshotFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-ch:
			fn(snap.docs, snap.err)
			if snap.err != nil {
				return snap.err
			}
		}
	}
}

func (r *fakeChatRepo) WatchChatList(ctx context.Context, fn repository.ChatSnapshotFunc) error {
	return watchChannel(ctx, r.chatList, fn)
}

func (r *fakeChatRepo) WatchLegacyChats(ctx context.Context, fn repository.ChatSnapshotFunc) error {
	return watchChannel(ctx, r.legacy, fn)
}

func (r *fakeChatRepo) WatchMessages(ctx context.Context, chatID string, fn repository.MessageSnapshotFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case messages := <-r.messages:
			if messages == nil {
				err := fmt.Errorf("listener failed")
				fn(nil, err)
				return err
			}
			fn(messages, nil)
		}
	}
}

func (r *fakeChatRepo) ChatListExists(ctx context.Context, chatID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.existing[chatID], nil
}

func (r *fakeChatRepo) UpdateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, input)
	return nil
}

func (r *fakeChatRepo) CreateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, input)
	r.existing[input.ChatID] = true
	return nil
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, chatID string, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	r.appended = append(r.appended, message)
	return nil
}

func (r *fakeChatRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.created) + len(r.updated) + len(r.appended)
}

type fakeImageStore struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{uploaded: map[string][]byte{}}
}

func (s *fakeImageStore) Upload(ctx context.Context, r io.Reader, objectPath, contentType string) (*entity.ListingImage, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.uploaded[objectPath] = buf.Bytes()
	s.mu.Unlock()
	return &entity.ListingImage{
		URL:  "https://storage.googleapis.com/test-bucket/" + objectPath,
		Path: objectPath,
		Name: objectPath,
		Size: int64(buf.Len()),
		Type: contentType,
	}, nil
}

func (s *fakeImageStore) Delete(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	s.deleted = append(s.deleted, fileURL)
	s.mu.Unlock()
	return nil
}

func (s *fakeImageStore) Close() error { return nil }
