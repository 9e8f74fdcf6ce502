package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
	"huhu/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.GET("/id", chatHandler.GetChatID)
	chatGroup.POST("/:id/messages", chatHandler.SendMessage)
}
