package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
)

const (
	chatListCollection = "chatList"
	chatsCollection    = "chats"
	messagesCollection = "messages"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) WatchChatList(ctx context.Context, fn repository.ChatSnapshotFunc) error {
	query := r.client.Collection(chatListCollection).OrderBy("timeStamp", firestore.Desc)
	return r.watchChats(ctx, query, chatListCollection, fn)
}

func (r *firestoreChatRepository) WatchLegacyChats(ctx context.Context, fn repository.ChatSnapshotFunc) error {
	return r.watchChats(ctx, r.client.Collection(chatsCollection).Query, chatsCollection, fn)
}

func (r *firestoreChatRepository) watchChats(ctx context.Context, query firestore.Query, name string, fn repository.ChatSnapshotFunc) error {
	iter := query.Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || isCanceled(err) {
				return nil
			}
			logger.Error("Firestore listener on %s failed: %v", name, err)
			appErr := errors.Internal("Failed to watch "+name, err)
			fn(nil, appErr)
			return appErr
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			appErr := errors.Internal("Failed to read "+name+" snapshot", err)
			fn(nil, appErr)
			return appErr
		}

		decoded := make([]entity.ChatDocument, 0, len(docs))
		for _, doc := range docs {
			chat, ok := DecodeChatDocument(doc.Ref.ID, doc.Data())
			if !ok {
				logger.Debug("Skipping %s document %s without participants", name, doc.Ref.ID)
				continue
			}
			decoded = append(decoded, chat)
		}
		fn(decoded, nil)
	}
}

func (r *firestoreChatRepository) WatchMessages(ctx context.Context, chatID string, fn repository.MessageSnapshotFunc) error {
	iter := r.client.Collection(chatsCollection).Doc(chatID).Collection(messagesCollection).
		OrderBy("createdAt", firestore.Asc).
		Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || isCanceled(err) {
				return nil
			}
			logger.Error("Firestore listener on messages of chat %s failed: %v", chatID, err)
			appErr := errors.Internal("Failed to watch messages", err)
			fn(nil, appErr)
			return appErr
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			appErr := errors.Internal("Failed to read messages snapshot", err)
			fn(nil, appErr)
			return appErr
		}

		messages := make([]*entity.Message, 0, len(docs))
		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				logger.Warn("Error parsing message %s in chat %s: %v", doc.Ref.ID, chatID, err)
				continue
			}
			message.ID = doc.Ref.ID
			messages = append(messages, &message)
		}
		fn(messages, nil)
	}
}

func (r *firestoreChatRepository) ChatListExists(ctx context.Context, chatID string) (bool, error) {
	doc, err := r.client.Collection(chatListCollection).Doc(chatID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to get chat", err)
	}
	return doc.Exists(), nil
}

func (r *firestoreChatRepository) UpdateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error {
	_, err := r.client.Collection(chatListCollection).Doc(input.ChatID).Update(ctx, []firestore.Update{
		{Path: "message", Value: entity.ChatMessagePreview{SenderID: input.SenderID, Text: text}},
		{FieldPath: firestore.FieldPath{"unreadCount", input.ReceiverID}, Value: firestore.Increment(1)},
		{Path: "timeStamp", Value: firestore.ServerTimestamp},
		{Path: "productImage", Value: input.ProductImage},
		{Path: "productPrice", Value: input.ProductPrice},
		{Path: "productId", Value: input.ProductID},
	})
	if err != nil {
		return errors.Internal("Failed to update chat", err)
	}
	return nil
}

func (r *firestoreChatRepository) CreateChatListEntry(ctx context.Context, input entity.SendMessageInput, text string) error {
	data := map[string]interface{}{
		"chatId":       input.ChatID,
		"timeStamp":    firestore.ServerTimestamp,
		"productName":  input.ProductName,
		"productImage": input.ProductImage,
		"productPrice": input.ProductPrice,
		"productId":    input.ProductID,
		"message": map[string]interface{}{
			"senderId": input.SenderID,
			"text":     text,
		},
		"participants": map[string]interface{}{
			input.SenderID: map[string]interface{}{
				"name":         input.SenderName,
				"senderAvatar": input.SenderAvatar,
			},
			input.ReceiverID: map[string]interface{}{
				"name":           input.ReceiverName,
				"receiverAvatar": input.ReceiverAvatar,
			},
		},
		"unreadCount": map[string]interface{}{
			input.ReceiverID: 1,
			input.SenderID:   0,
		},
	}

	if _, err := r.client.Collection(chatListCollection).Doc(input.ChatID).Set(ctx, data); err != nil {
		return errors.Internal("Failed to create chat", err)
	}

	logger.Info("Created chat list entry %s", input.ChatID)
	return nil
}

func (r *firestoreChatRepository) AppendMessage(ctx context.Context, chatID string, message *entity.Message) error {
	ref, _, err := r.client.Collection(chatsCollection).Doc(chatID).Collection(messagesCollection).Add(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	message.ID = ref.ID
	return nil
}
