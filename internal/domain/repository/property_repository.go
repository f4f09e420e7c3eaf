package repository

import (
	"context"
	"errors"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a property record does not exist.
var ErrPropertyNotFound = errors.New("property not found")

// SearchFilter is the single predicate shared by Search and CountSearch so a
// page and its total can never disagree.
type SearchFilter struct {
	// Location matches the property's city.
	Location string
	// GuestNumber is the minimum guest capacity.
	GuestNumber int
	// ExcludedIDs are occupied property ids excluded from results. Must be
	// non-empty; callers seed it with uuid.Nil when nothing is occupied so the
	// NOT IN clause stays well-formed.
	ExcludedIDs []uuid.UUID
}

// PropertyRepository defines the operations for property persistence.
type PropertyRepository interface {
	// FindByID retrieves a property with its amenities and images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// Search returns one page of properties matching the filter, ordered by id.
	Search(ctx context.Context, filter SearchFilter, offset, limit int) ([]*entity.Property, error)

	// CountSearch returns the total number of properties matching the filter.
	CountSearch(ctx context.Context, filter SearchFilter) (int64, error)

	// FindByOwner returns one page of the owner's properties, ordered by id.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Property, error)

	// CountByOwner returns the total number of the owner's properties.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Create persists a property together with its amenity and image rows.
	Create(ctx context.Context, property *entity.Property) error

	// Delete removes a property and its amenity/image rows. Reservations live
	// in another service and are cleaned up by a compensating call.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CountryRepository resolves country lookup records.
type CountryRepository interface {
	// FindByNamePrefix returns countries whose name starts with the given
	// prefix, case-insensitively, ordered by name.
	FindByNamePrefix(ctx context.Context, prefix string) ([]*entity.Country, error)
}
