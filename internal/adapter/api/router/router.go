package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/middleware"
	"huhu/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	e.Use(middleware.RateLimit(limiter, ratelimit.ActionRequest))

	SetupHealthRouter(e)
	SetupListingRouter(e, authMiddleware)
	SetupUserRouter(e)
	SetupWishlistRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware, limiter)
	SetupWebSocketRouter(e, authMiddleware)
}
