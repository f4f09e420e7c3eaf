package usecase

import (
	"context"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReservationInput defines the data required to book a property.
type CreateReservationInput struct {
	PropertyID  uuid.UUID `json:"propertyId" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	CheckIn     time.Time `json:"checkIn" validate:"required"`
	CheckOut    time.Time `json:"checkOut" validate:"required"`
	GuestNumber int       `json:"guestNumber" validate:"required,min=1"`
}

// ReservationUsecase defines the interface for reservation availability
// operations.
type ReservationUsecase interface {
	// GetOccupiedPropertyIDs returns ids of properties already booked in the
	// location for a window overlapping [checkIn, checkOut). Used by the
	// property catalog as an exclusion set during search.
	GetOccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error)

	// CreateReservation books a property for the given window.
	CreateReservation(ctx context.Context, principal *entity.Principal, input *CreateReservationInput) (*entity.Reservation, error)

	// DeleteAllByPropertyID removes every reservation of a property. Invoked
	// by the property catalog as compensating cleanup after a delete.
	DeleteAllByPropertyID(ctx context.Context, propertyID uuid.UUID) error
}
