package usecase

import (
	"context"
	"sync"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/logger"
)

// ChatSource names one input of a chat list subscription.
type ChatSource string

const (
	SourceChatList ChatSource = "chatList"
	SourceLegacy   ChatSource = "chats"
	SourceVendors  ChatSource = "vendors"
)

type ChatListFunc func(entries []entity.ChatListEntry)

type SourceErrorFunc func(source ChatSource, err error)

// Subscription is a cancellation handle for running observers.
type Subscription struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func newSubscription(ctx context.Context) (*Subscription, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Subscription{cancel: cancel}, ctx
}

func (s *Subscription) run(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// Stop cancels every observer and waits for them to exit. It must not be
// called from inside a subscription callback.
func (s *Subscription) Stop() {
	s.once.Do(s.cancel)
	s.wg.Wait()
}

// chatListState gates emission until the chat list, the legacy chats and the
// vendor cache have each completed once.
type chatListState struct {
	mu sync.Mutex

	userID   string
	onUpdate ChatListFunc
	stopped  bool

	chatListLoaded bool
	legacyLoaded   bool
	vendorsLoaded  bool

	chatList []entity.ChatDocument
	legacy   []entity.ChatDocument
	vendors  VendorCache
}

func (s *chatListState) ready() bool {
	return s.chatListLoaded && s.legacyLoaded && s.vendorsLoaded
}

// apply records one source update and emits the merged list when ready.
// Emission happens under the lock so callers see updates in order.
func (s *chatListState) apply(update func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	update()
	if !s.ready() {
		return
	}
	s.onUpdate(MergeChatLists(s.userID, s.chatList, s.legacy, s.vendors))
}

func (s *chatListState) stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// ChatListSubscription delivers the merged conversation list for one user.
type ChatListSubscription struct {
	*Subscription
	state *chatListState
}

func (s *ChatListSubscription) Stop() {
	s.state.stop()
	s.Subscription.Stop()
}

func startChatListSubscription(
	ctx context.Context,
	userID string,
	chatRepo repository.ChatRepository,
	vendorRepo repository.VendorRepository,
	onUpdate ChatListFunc,
	onError SourceErrorFunc,
) *ChatListSubscription {
	sub, ctx := newSubscription(ctx)
	state := &chatListState{
		userID:   userID,
		onUpdate: onUpdate,
		vendors:  VendorCache{},
	}

	report := func(source ChatSource, err error) {
		logger.Warn("Chat list source %s for user %s failed: %v", source, userID, err)
		if onError != nil {
			onError(source, err)
		}
	}

	sub.run(func() {
		vendors, err := vendorRepo.ListAll(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			report(SourceVendors, err)
		}
		state.apply(func() {
			if err == nil {
				state.vendors = NewVendorCache(vendors)
			}
			state.vendorsLoaded = true
		})
	})

	watch := func(source ChatSource, watchFn func(context.Context, repository.ChatSnapshotFunc) error, set func([]entity.ChatDocument)) {
		sub.run(func() {
			// Listener failures reach report through the callback; the
			// returned error only repeats them.
			_ = watchFn(ctx, func(docs []entity.ChatDocument, err error) {
				if err != nil {
					report(source, err)
				}
				state.apply(func() {
					if err == nil {
						set(docs)
					}
					switch source {
					case SourceChatList:
						state.chatListLoaded = true
					case SourceLegacy:
						state.legacyLoaded = true
					}
				})
			})
		})
	}

	watch(SourceChatList, chatRepo.WatchChatList, func(docs []entity.ChatDocument) { state.chatList = docs })
	watch(SourceLegacy, chatRepo.WatchLegacyChats, func(docs []entity.ChatDocument) { state.legacy = docs })

	return &ChatListSubscription{Subscription: sub, state: state}
}
