package usecase

import (
	"context"
	"strings"
	"time"

	"huhu/internal/domain/entity"
	"huhu/internal/domain/repository"
	"huhu/internal/infrastructure/ratelimit"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/validation"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	vendorRepo  repository.VendorRepository
	rateLimiter *ratelimit.RateLimiter
	validator   *validation.Validator
	now         func() time.Time
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	vendorRepo repository.VendorRepository,
	rateLimiter *ratelimit.RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		vendorRepo:  vendorRepo,
		rateLimiter: rateLimiter,
		validator:   validation.New(),
		now:         time.Now,
	}
}

// SendMessage records a message and keeps the chat list entry current. The
// entry write and the message append are separate writes; a failure of the
// second leaves the entry updated and is returned to the caller.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input entity.SendMessageInput) (*entity.Message, error) {
	text := strings.TrimSpace(input.Text)
	input.Text = text

	if err := uc.validator.ValidateStruct(input); err != nil {
		return nil, errors.BadRequest("Missing required parameters for sending message", err)
	}
	if input.SenderID == input.ReceiverID {
		return nil, errors.BadRequest("Cannot send message to yourself", nil)
	}

	if uc.rateLimiter != nil {
		if allowed, wait := uc.rateLimiter.Allow(input.SenderID, ratelimit.ActionSendMessage); !allowed {
			logger.Warn("SendMessage rate limited: user %s must wait %v", input.SenderID, wait)
			return nil, errors.TooManyRequests("You are sending messages too quickly. Please slow down.")
		}
	}

	exists, err := uc.chatRepo.ChatListExists(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if exists {
		err = uc.chatRepo.UpdateChatListEntry(ctx, input, text)
	} else {
		err = uc.chatRepo.CreateChatListEntry(ctx, input, text)
	}
	if err != nil {
		logger.Error("SendMessage: failed to write chat list entry %s: %v", input.ChatID, err)
		return nil, err
	}

	message := &entity.Message{
		Message:   text,
		SenderID:  input.SenderID,
		CreatedAt: uc.now(),
		Read:      false,
	}
	if err := uc.chatRepo.AppendMessage(ctx, input.ChatID, message); err != nil {
		logger.Error("SendMessage: chat list entry %s updated but message append failed: %v", input.ChatID, err)
		return nil, err
	}

	return message, nil
}

// SubscribeUserChats starts observing the user's conversations. onUpdate
// receives the full merged list once every source has loaded and after each
// change thereafter. Stop the returned handle to end both observations.
func (uc *ChatUseCase) SubscribeUserChats(ctx context.Context, userID string, onUpdate ChatListFunc, onError SourceErrorFunc) (*ChatListSubscription, error) {
	if userID == "" {
		return nil, errors.BadRequest("User ID is required for chat subscription", nil)
	}
	if onUpdate == nil {
		return nil, errors.BadRequest("Update callback is required", nil)
	}

	return startChatListSubscription(ctx, userID, uc.chatRepo, uc.vendorRepo, onUpdate, onError), nil
}

// SubscribeMessages observes one conversation's messages, oldest first. On a
// listener failure onUpdate receives nil and onError the cause.
func (uc *ChatUseCase) SubscribeMessages(ctx context.Context, chatID string, onUpdate func([]*entity.Message), onError func(error)) (*Subscription, error) {
	if chatID == "" {
		return nil, errors.BadRequest("Chat ID is required for subscription", nil)
	}

	sub, ctx := newSubscription(ctx)
	sub.run(func() {
		// Listener failures are delivered to the callback below.
		_ = uc.chatRepo.WatchMessages(ctx, chatID, func(messages []*entity.Message, err error) {
			if err != nil {
				logger.Warn("Messages subscription for chat %s failed: %v", chatID, err)
				onUpdate(nil)
				if onError != nil {
					onError(err)
				}
				return
			}
			onUpdate(messages)
		})
	})

	return sub, nil
}

// GenerateChatID derives the conversation id for a product between two
// users. The larger id always comes first, so both sides get the same id.
func GenerateChatID(senderID, vendorID, productID string) string {
	if senderID > vendorID {
		return productID + senderID + vendorID
	}
	return productID + vendorID + senderID
}
