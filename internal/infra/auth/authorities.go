// Package auth provides the token verification infrastructure shared by the
// gateway and all booking services.
package auth

import (
	"booking/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

const (
	realmAccessClaim = "realm_access"
	rolesClaim       = "roles"
)

// AuthoritiesFromClaims maps the nested realm-role claim into authorities.
// Every role string in the list becomes its own authority, upper-cased and
// prefixed (e.g. "admin" -> "ROLE_ADMIN").
//
// A missing claim or an unexpected claim shape yields an empty set, never an
// error: absence of roles means "no privileges", not a broken token.
func AuthoritiesFromClaims(claims jwt.MapClaims) entity.Authorities {
	realmAccess, ok := claims[realmAccessClaim].(map[string]any)
	if !ok {
		return entity.Authorities{}
	}

	roles, ok := realmAccess[rolesClaim].([]any)
	if !ok {
		return entity.Authorities{}
	}

	authorities := make(entity.Authorities, 0, len(roles))
	for _, role := range roles {
		name, ok := role.(string)
		if !ok {
			continue
		}
		authorities = append(authorities, entity.AuthorityFromRole(name))
	}

	return authorities
}
