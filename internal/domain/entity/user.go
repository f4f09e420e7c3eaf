// Package entity contains the core business objects of the booking platform,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record owned by the user directory service. It is
// created lazily on first authenticated contact from token claims and mutated
// through explicit profile edits; it is never hard-deleted.
type User struct {
	ID        uuid.UUID // Subject id issued by the identity provider.
	Email     string    // Unique login identifier.
	FirstName string
	LastName  string
	Image     string // Relative path into the image bucket, may be empty.
	CreatedAt time.Time
	UpdatedAt time.Time
}
