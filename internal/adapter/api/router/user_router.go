package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.GET("/:id/profile", userHandler.GetProfile)
	users.GET("/:id/listings", userHandler.GetListings)
	users.GET("/:id/jobs", userHandler.GetJobs)
}
