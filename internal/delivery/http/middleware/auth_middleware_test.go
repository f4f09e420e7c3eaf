package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	principal *entity.Principal
	err       error
}

func (f *fakeVerifier) Verify(string) (*entity.Principal, error) {
	return f.principal, f.err
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/booking/api/v1/properties/user", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{})
	c, rec := newAuthTestContext(t, "")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{})
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{err: errors.New("token is expired")})
	c, rec := newAuthTestContext(t, "Bearer expired-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_AttachesPrincipal(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New(), Email: "jane.doe@example.com"}
	m := NewAuthMiddleware(&fakeVerifier{principal: principal})
	c, rec := newAuthTestContext(t, "Bearer valid-token")

	var got *entity.Principal
	handler := func(c echo.Context) error {
		var ok bool
		got, ok = PrincipalFrom(c)
		require.True(t, ok)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(handler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, principal, got)
}

func TestAuthenticateUnless_SkipsMatchedRequests(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{err: errors.New("should not be called")})
	c, rec := newAuthTestContext(t, "")

	skipAll := func(echo.Context) bool { return true }

	require.NoError(t, m.AuthenticateUnless(skipAll)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthority(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{})
	admin := entity.AuthorityFromRole("admin")

	t.Run("granted", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(principalContextKey, &entity.Principal{
			ID:          uuid.New(),
			Authorities: entity.Authorities{admin},
		})

		require.NoError(t, m.RequireAuthority(admin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(principalContextKey, &entity.Principal{ID: uuid.New()})

		require.NoError(t, m.RequireAuthority(admin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		require.NoError(t, m.RequireAuthority(admin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
