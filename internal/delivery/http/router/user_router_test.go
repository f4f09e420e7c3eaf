package router

import (
	"net/http"
	"testing"

	"booking/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestUserRouter_ServesImagesOutsideAPIPrefix(t *testing.T) {
	e := echo.New()
	r := &userRouter{authMiddleware: middleware.NewAuthMiddleware(nil)}
	r.RegisterRoutes(e)

	paths := make(map[string]bool)
	for _, route := range e.Routes() {
		if route.Method == http.MethodGet {
			paths[route.Path] = true
		}
	}

	assert.True(t, paths["/users/image/*"], "unprefixed image path must be routable")
	assert.True(t, paths["/booking/api/v1/users/image/*"], "prefixed image alias must be routable")
}
