// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save upserts a user record keyed by its ID.
	Save(ctx context.Context, user *entity.User) error

	// UpdateImage sets the profile image path for the given user. Idempotent.
	UpdateImage(ctx context.Context, id uuid.UUID, path string) error
}
