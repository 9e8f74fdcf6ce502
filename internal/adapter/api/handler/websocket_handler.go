package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/domain/entity"
	ws "huhu/internal/infrastructure/websocket"
	"huhu/internal/usecase"
	"huhu/pkg/errors"
	"huhu/pkg/logger"
	"huhu/pkg/response"
)

type WebSocketHandler struct {
	chatUseCase *usecase.ChatUseCase
	wsManager   *ws.Manager
	upgrader    gorillaws.Upgrader
}

func NewWebSocketHandler(chatUseCase *usecase.ChatUseCase, wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		chatUseCase: chatUseCase,
		wsManager:   wsManager,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// StreamChatList pushes the caller's merged conversation list on every change.
func (h *WebSocketHandler) StreamChatList(c echo.Context) error {
	userID := middleware.CurrentUser(c).UID
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	return h.serve(c, userID, func(client *ws.Client) (stopper, error) {
		return h.chatUseCase.SubscribeUserChats(c.Request().Context(), userID,
			func(entries []entity.ChatListEntry) {
				client.SendJSON(ws.MessageTypeChatList, "", entries)
			},
			func(source usecase.ChatSource, err error) {
				client.SendJSON(ws.MessageTypeSourceError, "", ws.ErrorData{Message: "Chat source unavailable", Source: string(source)})
			})
	})
}

// StreamMessages pushes one conversation's messages, oldest first.
func (h *WebSocketHandler) StreamMessages(c echo.Context) error {
	userID := middleware.CurrentUser(c).UID
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}
	chatID := c.Param("id")

	return h.serve(c, userID, func(client *ws.Client) (stopper, error) {
		return h.chatUseCase.SubscribeMessages(c.Request().Context(), chatID,
			func(messages []*entity.Message) {
				client.SendJSON(ws.MessageTypeMessages, chatID, messages)
			},
			func(err error) {
				client.SendJSON(ws.MessageTypeSourceError, chatID, ws.ErrorData{Message: "Messages unavailable", Source: "messages"})
			})
	})
}

type stopper interface {
	Stop()
}

// serve upgrades the request, starts the subscription and pumps frames
// until the peer disconnects. The handler returns once the socket closes.
func (h *WebSocketHandler) serve(c echo.Context, userID string, subscribe func(*ws.Client) (stopper, error)) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed for %s: %v", userID, err)
		return nil
	}

	client := ws.NewClient(userID, conn)
	h.wsManager.Register <- client
	go client.WritePump()

	sub, err := subscribe(client)
	if err != nil {
		client.SendJSON(ws.MessageTypeError, "", ws.ErrorData{Message: err.Error()})
		h.wsManager.Unregister <- client
		return nil
	}

	ctx := c.Request().Context()
	client.ReadPump(func(frame []byte) {
		h.wsManager.HandleClientMessage(ctx, client, h.chatUseCase, frame)
	})

	sub.Stop()
	h.wsManager.Unregister <- client
	return nil
}
