package repository

import (
	"context"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ReservationRepository defines the operations for reservation persistence.
type ReservationRepository interface {
	// FindOccupiedPropertyIDs returns ids of properties in the given location
	// that have a reservation overlapping [checkIn, checkOut).
	FindOccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error)

	// Create persists a new reservation.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// DeleteByPropertyID removes every reservation of the given property.
	// Deleting zero rows is not an error.
	DeleteByPropertyID(ctx context.Context, propertyID uuid.UUID) error
}
