// Package service defines the contracts for infrastructure collaborators the
// use cases depend on: token verification, cross-service clients and blob
// storage.
package service

import (
	"booking/internal/domain/entity"
)

// TokenVerifier validates a bearer token against the external identity
// provider and derives the request principal from its claims.
//
// Every service holds its own verifier and re-validates inbound tokens; a
// forwarded identity is never trusted blindly.
type TokenVerifier interface {
	// Verify checks signature, expiry and issuer of the raw token and returns
	// the principal carried by its claims. A token without a realm-role claim
	// verifies fine and yields an empty authority set.
	Verify(tokenString string) (*entity.Principal, error)
}
