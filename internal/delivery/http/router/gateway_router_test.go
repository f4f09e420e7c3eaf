package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booking/config"
	"booking/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeContext(method, path string) echo.Context {
	req := httptest.NewRequest(method, path, nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestPublicPropertyRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		public bool
	}{
		{name: "search", method: http.MethodGet, path: "/booking/api/v1/properties/search?location=Lisbon", public: true},
		{name: "aggregate", method: http.MethodGet, path: "/booking/api/v1/properties/property/9f1c", public: true},
		{name: "owner listing", method: http.MethodGet, path: "/booking/api/v1/properties/user", public: false},
		{name: "create", method: http.MethodPost, path: "/booking/api/v1/properties", public: false},
		{name: "delete", method: http.MethodDelete, path: "/booking/api/v1/properties/9f1c", public: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.public, publicPropertyRoute(routeContext(tt.method, tt.path)))
		})
	}
}

func TestGatewayRouter_ForwardsUnprefixedImagePath(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	r, err := NewGatewayRouter(GatewayRouterParams{
		Config: &config.Config{Services: config.ServicesConfig{
			PropertyURL:    backend.URL,
			ReservationURL: backend.URL,
			UserURL:        backend.URL,
		}},
		AuthMiddleware: middleware.NewAuthMiddleware(nil),
	})
	require.NoError(t, err)

	e := echo.New()
	r.RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/image/users/jane.jpg", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/users/image/users/jane.jpg", gotPath)
}

func TestPublicUserRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		public bool
	}{
		{name: "profile lookup", method: http.MethodGet, path: "/booking/api/v1/users/9f1c", public: true},
		{name: "image", method: http.MethodGet, path: "/booking/api/v1/users/image/users/jane.jpg", public: true},
		{name: "own record", method: http.MethodGet, path: "/booking/api/v1/users/me", public: false},
		{name: "own image update", method: http.MethodPut, path: "/booking/api/v1/users/me/image", public: false},
		{name: "save own record", method: http.MethodPost, path: "/booking/api/v1/users/me", public: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.public, publicUserRoute(routeContext(tt.method, tt.path)))
		})
	}
}
