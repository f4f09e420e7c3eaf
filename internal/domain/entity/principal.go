package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// AuthorityPrefix is prepended to every role claim when it is mapped into an
// authority, e.g. role "admin" becomes authority "ROLE_ADMIN".
const AuthorityPrefix = "ROLE_"

// Authority is a normalized permission token derived from a role claim.
type Authority string

// AuthorityFromRole maps a raw role string from a token claim to an Authority.
// Roles are upper-cased before prefixing so policy matching is case-stable.
func AuthorityFromRole(role string) Authority {
	return Authority(AuthorityPrefix + strings.ToUpper(role))
}

// Authorities is the granted authority set of a principal.
type Authorities []Authority

// Contains reports whether the set grants the given authority.
func (as Authorities) Contains(a Authority) bool {
	return slices.Contains(as, a)
}

// Principal is the authenticated identity attached to a request. It is
// derived from a verified token per request and never persisted.
type Principal struct {
	ID          uuid.UUID // Token subject.
	Email       string
	FirstName   string
	LastName    string
	Authorities Authorities
}

// HasAuthority reports whether the principal holds the given authority.
func (p *Principal) HasAuthority(a Authority) bool {
	return p.Authorities.Contains(a)
}
