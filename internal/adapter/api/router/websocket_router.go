package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
	"huhu/internal/adapter/api/middleware"
)

// SetupWebSocketRouter registers the live streams. Browsers pass the ID
// token as ?token= since they cannot set headers on upgrades.
func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wsHandler := handler.GetWebSocketHandler()

	wsGroup := e.Group("/v1/ws")
	wsGroup.Use(authMiddleware.Authenticate)
	wsGroup.GET("/chats", wsHandler.StreamChatList)
	wsGroup.GET("/chats/:id/messages", wsHandler.StreamMessages)
}
