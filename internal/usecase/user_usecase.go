// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// UserDetails is the user directory's read model.
type UserDetails struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Image     string    `json:"image"`
}

// SaveUserDetailsInput defines the mutable profile fields. Identity fields
// (id, email) always come from the authenticated principal's token claims.
type SaveUserDetailsInput struct {
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
}

// UserUsecase defines the interface for user directory operations.
type UserUsecase interface {
	// GetUserDetails returns the caller's own record.
	GetUserDetails(ctx context.Context, principal *entity.Principal) (*UserDetails, error)

	// GetUserByID resolves a user record by id; used by the property catalog
	// to merge owner data into aggregates.
	GetUserByID(ctx context.Context, id uuid.UUID) (*UserDetails, error)

	// FindUserByEmail returns (nil, nil) when no record exists; absence is a
	// valid answer during first-login checks, not an error.
	FindUserByEmail(ctx context.Context, email string) (*UserDetails, error)

	// SaveUserDetails upserts the caller's record from token claims plus the
	// optional profile fields. Calling it twice with the same data yields one
	// record.
	SaveUserDetails(ctx context.Context, principal *entity.Principal, input *SaveUserDetailsInput) (*UserDetails, error)

	// UpdateProfileImage stores the caller's profile image path. Idempotent.
	UpdateProfileImage(ctx context.Context, principal *entity.Principal, path string) error
}
