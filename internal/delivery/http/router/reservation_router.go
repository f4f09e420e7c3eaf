package router

import (
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ReservationRouterParams struct {
	fx.In

	ReservationHandler *handler.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// reservationRouter holds the handlers of the reservation availability
// service.
type reservationRouter struct {
	reservationHandler *handler.ReservationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewReservationRouter is the constructor for the reservation router.
func NewReservationRouter(params ReservationRouterParams) Router {
	return &reservationRouter{
		reservationHandler: params.ReservationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up the reservation API routes.
func (r *reservationRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(basePath)
	api.POST("/reservations", r.reservationHandler.CreateReservation, r.authMiddleware.Authenticate)

	// Service-to-service routes. They live outside the public prefix so the
	// gateway never forwards them.
	internalGroup := e.Group("/internal/reservations")
	{
		internalGroup.GET("/occupied", r.reservationHandler.GetOccupiedProperties)
		internalGroup.DELETE("/property/:propertyId", r.reservationHandler.DeleteByProperty)
	}
}
