// Package router contains the route tables of the booking binaries. Each
// binary provides exactly one Router to the shared HTTP server.
package router

import (
	"github.com/labstack/echo/v4"
)

// Router registers a binary's routes on the Echo server.
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

// basePath is the public API prefix shared by every service and the gateway.
const basePath = "/booking/api/v1"
