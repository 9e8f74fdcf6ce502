package websocket

import (
	"context"
	"encoding/json"
	"time"

	"huhu/internal/domain/entity"
	"huhu/pkg/logger"
)

// WebSocket message types
const (
	MessageTypePing        = "ping"
	MessageTypePong        = "pong"
	MessageTypeChatList    = "chat_list"
	MessageTypeMessages    = "messages"
	MessageTypeSendMessage = "send_message"
	MessageTypeMessageSent = "message_sent"
	MessageTypeNewMessage  = "new_message"
	MessageTypeSourceError = "source_error"
	MessageTypeError       = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	ChatID    string      `json:"chat_id,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type incomingMessage struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	ChatID string          `json:"chat_id,omitempty"`
}

type ErrorData struct {
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

// MessageSender posts chat messages on behalf of a connected user.
type MessageSender interface {
	SendMessage(ctx context.Context, input entity.SendMessageInput) (*entity.Message, error)
}

// Encode renders a server message with the current timestamp.
func Encode(messageType, chatID string, data interface{}) []byte {
	payload, err := json.Marshal(WSMessage{
		Type:      messageType,
		Data:      data,
		ChatID:    chatID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("WebSocket: failed to encode %s message: %v", messageType, err)
		return nil
	}
	return payload
}

// SendJSON encodes and queues a message for the client.
func (c *Client) SendJSON(messageType, chatID string, data interface{}) bool {
	payload := Encode(messageType, chatID, data)
	if payload == nil {
		return false
	}
	return c.Send(payload)
}

// HandleClientMessage processes one frame from client. Senders of
// send_message are always the connected user.
func (m *Manager) HandleClientMessage(ctx context.Context, client *Client, sender MessageSender, messageBytes []byte) {
	var msg incomingMessage
	if err := json.Unmarshal(messageBytes, &msg); err != nil {
		logger.Debug("WebSocket: invalid frame from %s: %v", client.UserID, err)
		client.SendJSON(MessageTypeError, "", ErrorData{Message: "Invalid message format"})
		return
	}

	switch msg.Type {
	case MessageTypePing:
		client.SendJSON(MessageTypePong, "", nil)

	case MessageTypeSendMessage:
		m.handleSendMessage(ctx, client, sender, msg)

	default:
		client.SendJSON(MessageTypeError, msg.ChatID, ErrorData{Message: "Unknown message type: " + msg.Type})
	}
}

func (m *Manager) handleSendMessage(ctx context.Context, client *Client, sender MessageSender, msg incomingMessage) {
	if sender == nil {
		client.SendJSON(MessageTypeError, msg.ChatID, ErrorData{Message: "Sending is not available on this stream"})
		return
	}

	var input entity.SendMessageInput
	if err := json.Unmarshal(msg.Data, &input); err != nil {
		client.SendJSON(MessageTypeError, msg.ChatID, ErrorData{Message: "Invalid message data"})
		return
	}
	input.SenderID = client.UserID
	if input.ChatID == "" {
		input.ChatID = msg.ChatID
	}

	message, err := sender.SendMessage(ctx, input)
	if err != nil {
		client.SendJSON(MessageTypeError, input.ChatID, ErrorData{Message: err.Error()})
		return
	}

	client.SendJSON(MessageTypeMessageSent, input.ChatID, message)
	m.SendToUser(input.ReceiverID, Encode(MessageTypeNewMessage, input.ChatID, message))
}
