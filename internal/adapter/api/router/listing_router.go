package router

import (
	"github.com/labstack/echo/v4"

	"huhu/internal/adapter/api/handler"
	"huhu/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()
	postHandler := handler.GetPostHandler()

	e.GET("/v1/categories/:category", listingHandler.GetCategory)
	e.GET("/v1/products/:id", listingHandler.GetProduct)

	e.GET("/v1/jobs", listingHandler.ListJobs)
	e.GET("/v1/jobs/:id", listingHandler.GetJob)

	services := e.Group("/v1/services")
	services.GET("", listingHandler.ListServices)
	services.GET("/:id", listingHandler.GetService)
	services.POST("", postHandler.CreateService, authMiddleware.Authenticate)

	properties := e.Group("/v1/properties")
	properties.GET("", listingHandler.ListProperties)
	properties.GET("/:id", listingHandler.GetProperty, authMiddleware.Optional)
	properties.GET("/:id/similar", listingHandler.GetSimilarProperties)

	myProperties := properties.Group("")
	myProperties.Use(authMiddleware.Authenticate)
	myProperties.POST("", postHandler.CreateProperty)
	myProperties.PUT("/:id", postHandler.UpdateProperty)
	myProperties.PATCH("/:id/status", postHandler.SetPropertyStatus)
	myProperties.DELETE("/:id", postHandler.DeleteProperty)
}
