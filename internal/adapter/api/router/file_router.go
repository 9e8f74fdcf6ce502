package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
	"huhu/internal/adapter/api/middleware"
	"huhu/internal/infrastructure/ratelimit"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	postHandler := handler.GetPostHandler()

	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.Authenticate)
	uploads.Use(middleware.RateLimit(limiter, ratelimit.ActionUpload))
	uploads.POST("", postHandler.UploadImage)
}
