package auth

import (
	"context"
	"log/slog"
	"time"

	"booking/config"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/service"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultJWKSRefresh = time.Hour

// Params defines the dependencies for the verifier.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// jwtVerifier validates bearer tokens against the issuer's JWKS endpoint.
type jwtVerifier struct {
	jwks   *keyfunc.JWKS
	issuer string
}

// NewVerifier fetches the issuer's key set and returns a TokenVerifier.
// The key set refreshes in the background until the service stops.
func NewVerifier(params Params) (service.TokenVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil || cfg.JWKSURL == "" {
		return nil, errors.New("auth.jwksUrl must be configured")
	}

	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = defaultJWKSRefresh
	}

	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		RefreshInterval: refresh,
		RefreshErrorHandler: func(err error) {
			params.Logger.Warn("JWKS refresh failed", slog.Any("error", err))
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch JWKS")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			jwks.EndBackground()

			return nil
		},
	})

	return &jwtVerifier{jwks: jwks, issuer: cfg.Issuer}, nil
}

// Verify parses and validates the token, then derives the principal from its
// claims: subject id, email, given/family name and the realm-role authorities.
func (v *jwtVerifier) Verify(tokenString string) (*entity.Principal, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc, options...)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("unexpected claim format")
	}

	return PrincipalFromClaims(claims)
}

// PrincipalFromClaims builds the request principal from verified claims.
func PrincipalFromClaims(claims jwt.MapClaims) (*entity.Principal, error) {
	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("subject missing from token")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid subject format in token")
	}

	principal := &entity.Principal{
		ID:          userID,
		Authorities: AuthoritiesFromClaims(claims),
	}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if givenName, ok := claims["given_name"].(string); ok {
		principal.FirstName = givenName
	}
	if familyName, ok := claims["family_name"].(string); ok {
		principal.LastName = familyName
	}

	return principal, nil
}
