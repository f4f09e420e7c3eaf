package router

import (
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type PropertyRouterParams struct {
	fx.In

	PropertyHandler *handler.PropertyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// propertyRouter holds the handlers of the property catalog service.
type propertyRouter struct {
	propertyHandler *handler.PropertyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewPropertyRouter is the constructor for the property catalog router.
func NewPropertyRouter(params PropertyRouterParams) Router {
	return &propertyRouter{
		propertyHandler: params.PropertyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the property catalog API routes.
func (r *propertyRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(basePath)

	// Public catalog routes
	api.GET("/properties/search", r.propertyHandler.SearchProperties)
	api.GET("/properties/property/:propertyId", r.propertyHandler.GetProperty)
	api.GET("/countries/:name", r.propertyHandler.GetCountries)

	// Owner routes that require authentication
	ownerGroup := api.Group("/properties", r.authMiddleware.Authenticate)
	{
		ownerGroup.GET("/user", r.propertyHandler.GetOwnProperties)
		ownerGroup.POST("", r.propertyHandler.CreateProperty)
		ownerGroup.DELETE("/:propertyId", r.propertyHandler.DeleteProperty)
	}
}
