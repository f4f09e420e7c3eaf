package router

import (
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type UserRouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// userRouter holds the handlers of the user directory service.
type userRouter struct {
	userHandler    *handler.UserHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewUserRouter is the constructor for the user directory router.
func NewUserRouter(params UserRouterParams) Router {
	return &userRouter{
		userHandler:    params.UserHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the user directory API routes.
func (r *userRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Images live outside the API prefix so stored image paths stay short
	// and stable; the prefixed alias keeps API clients working too.
	e.GET("/users/image/*", r.imageHandler.GetImage)

	users := e.Group(basePath + "/users")

	// Public routes: image serving and the cross-service profile lookup.
	users.GET("/image/*", r.imageHandler.GetImage)
	users.GET("/:userId", r.userHandler.GetUser)

	// The caller's own record
	meGroup := users.Group("/me", r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.userHandler.GetMe)
		meGroup.POST("", r.userHandler.SaveMe)
		meGroup.PUT("/image", r.userHandler.UpdateMyImage)
	}
}
