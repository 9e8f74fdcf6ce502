package handler

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	"huhu/internal/infrastructure/websocket"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
	wsManager   *websocket.Manager
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase, wsManager *websocket.Manager) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		wsManager:   wsManager,
	}
}

// SendMessage posts to the chat in the path as the signed-in user. Sender
// name and avatar default to the caller's token profile.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var input entity.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user := middleware.CurrentUser(c)
	input.ChatID = c.Param("id")
	input.SenderID = user.UID
	if input.SenderName == "" {
		input.SenderName = user.DisplayName
	}
	if input.SenderAvatar == "" {
		input.SenderAvatar = user.PhotoURL
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	if h.wsManager != nil {
		h.wsManager.SendToUser(input.ReceiverID, websocket.Encode(websocket.MessageTypeNewMessage, input.ChatID, message))
	}

	return response.Created(c, message)
}

// GetChatID returns the conversation id between the caller and a vendor
// about a product.
func (h *ChatHandler) GetChatID(c echo.Context) error {
	vendorID := c.QueryParam("vendorId")
	productID := c.QueryParam("productId")
	if vendorID == "" || productID == "" {
		return response.Error(c, errors.BadRequest("vendorId and productId are required", nil))
	}

	return response.Success(c, map[string]string{
		"chatId": usecase.GenerateChatID(middleware.CurrentUser(c).UID, vendorID, productID),
	})
}
