package entity

import "time"

type Message struct {
	ID        string    `json:"id" firestore:"-"`
	Message   string    `json:"message" firestore:"message"`
	SenderID  string    `json:"senderId" firestore:"senderId"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	Image     *string   `json:"image" firestore:"image"`
	Read      bool      `json:"read" firestore:"read"`
}

// SendMessageInput carries everything needed to post a message and keep the
// chat list entry in sync.
type SendMessageInput struct {
	ChatID         string `json:"chatId" validate:"required"`
	SenderID       string `json:"senderId" validate:"required"`
	SenderName     string `json:"senderName" validate:"required"`
	SenderAvatar   string `json:"senderAvatar"`
	Text           string `json:"text" validate:"required"`
	ReceiverID     string `json:"receiverId" validate:"required"`
	ReceiverName   string `json:"receiverName" validate:"required"`
	ReceiverAvatar string `json:"receiverAvatar"`
	ProductName    string `json:"productName" validate:"required"`
	ProductID      string `json:"productId"`
	ProductImage   string `json:"productImage"`
	ProductPrice   string `json:"productPrice"`
}
