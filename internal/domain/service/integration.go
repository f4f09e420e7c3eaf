package service

import (
	"context"
	"errors"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by UserClient when the directory has no record
// for the requested id.
var ErrUserNotFound = errors.New("user not found in directory")

// ReservationClient is the property catalog's view of the reservation
// availability service.
type ReservationClient interface {
	// OccupiedPropertyIDs returns ids of properties with a reservation
	// overlapping [checkIn, checkOut) in the given location. Search treats a
	// failure here as fatal for the request.
	OccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error)

	// DeleteReservationsByProperty asks the owning service to remove every
	// reservation of a deleted property. Best-effort compensating call.
	DeleteReservationsByProperty(ctx context.Context, propertyID uuid.UUID) error
}

// UserClient is the property catalog's view of the user directory service,
// used to merge owner profile data into property aggregates.
type UserClient interface {
	// GetUserByID resolves the current user record for the given id.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
