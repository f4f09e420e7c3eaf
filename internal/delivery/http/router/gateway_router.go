package router

import (
	"net/http"
	"net/url"
	"strings"

	"booking/config"
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type GatewayRouterParams struct {
	fx.In

	Config         *config.Config
	AuthMiddleware *middleware.AuthMiddleware
}

// gatewayRouter proxies the public API surface to the owning services. It
// rejects unauthenticated requests on protected routes before they leave the
// edge; the services still re-verify the forwarded token themselves.
type gatewayRouter struct {
	propertyURL    *url.URL
	reservationURL *url.URL
	userURL        *url.URL
	authMiddleware *middleware.AuthMiddleware
}

// NewGatewayRouter is the constructor for the gateway router.
func NewGatewayRouter(params GatewayRouterParams) (Router, error) {
	propertyURL, err := parseServiceURL(params.Config.Services.PropertyURL, "services.propertyUrl")
	if err != nil {
		return nil, err
	}
	reservationURL, err := parseServiceURL(params.Config.Services.ReservationURL, "services.reservationUrl")
	if err != nil {
		return nil, err
	}
	userURL, err := parseServiceURL(params.Config.Services.UserURL, "services.userUrl")
	if err != nil {
		return nil, err
	}

	return &gatewayRouter{
		propertyURL:    propertyURL,
		reservationURL: reservationURL,
		userURL:        userURL,
		authMiddleware: params.AuthMiddleware,
	}, nil
}

func parseServiceURL(raw, key string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.Errorf("%s must be configured", key)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", key)
	}

	return parsed, nil
}

// RegisterRoutes sets up one proxy group per backend. Requests are forwarded
// with their path untouched; the services serve the full public paths.
func (r *gatewayRouter) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.Group(basePath+"/properties",
		r.authMiddleware.AuthenticateUnless(publicPropertyRoute),
		proxyTo(r.propertyURL),
	)
	e.Group(basePath+"/countries",
		proxyTo(r.propertyURL),
	)
	e.Group(basePath+"/users",
		r.authMiddleware.AuthenticateUnless(publicUserRoute),
		proxyTo(r.userURL),
	)
	// Image serving is public and lives outside the API prefix.
	e.Group("/users/image",
		proxyTo(r.userURL),
	)
	e.Group(basePath+"/reservations",
		r.authMiddleware.Authenticate,
		proxyTo(r.reservationURL),
	)
}

func proxyTo(target *url.URL) echo.MiddlewareFunc {
	return echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer(
		[]*echomiddleware.ProxyTarget{{URL: target}},
	))
}

// publicPropertyRoute matches the catalog routes anyone may call.
func publicPropertyRoute(c echo.Context) bool {
	if c.Request().Method != http.MethodGet {
		return false
	}
	path := c.Request().URL.Path

	return strings.HasPrefix(path, basePath+"/properties/search") ||
		strings.HasPrefix(path, basePath+"/properties/property/")
}

// publicUserRoute matches profile lookups and image serving; only the
// caller's own record requires a token.
func publicUserRoute(c echo.Context) bool {
	if c.Request().Method != http.MethodGet {
		return false
	}
	path := c.Request().URL.Path

	return path != basePath+"/users/me" && !strings.HasPrefix(path, basePath+"/users/me/")
}
