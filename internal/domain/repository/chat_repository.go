package repository

import (
	"context"

	"huhu/internal/domain/entity"
)

// ChatSnapshotFunc receives each full snapshot of a watched collection, or
// the error that interrupted it.
type ChatSnapshotFunc func(docs []entity.ChatDocument, err error)

type MessageSnapshotFunc func(messages []*entity.Message, err error)

type ChatRepository interface {
	// Watch methods block until ctx is done or the listener fails. They call
	// fn with the complete result set on every change.
	WatchChatList(ctx context.Context, fn ChatSnapshotFunc) error
	WatchLegacyChats(ctx context.Context, fn ChatSnapshotFunc) error
	WatchMessages(ctx context.Context, chatID string, fn MessageSnapshotFunc) error

	ChatListExists(ctx context.Context, chatID string) (bool, error)
	UpdateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error
	CreateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error
	AppendMessage(ctx context.Context, chatID string, message *entity.Message) error
}
