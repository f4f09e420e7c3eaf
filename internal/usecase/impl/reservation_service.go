package impl

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/usecase"

	"github.com/google/uuid"
)

// reservationService implements the usecase.ReservationUsecase interface.
type reservationService struct {
	logger       *slog.Logger
	reservations repository.ReservationRepository
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(logger *slog.Logger, reservations repository.ReservationRepository) usecase.ReservationUsecase {
	return &reservationService{
		logger:       logger,
		reservations: reservations,
	}
}

// GetOccupiedPropertyIDs returns ids of properties booked in the location for
// a window overlapping [checkIn, checkOut). The result is never nil so
// callers can marshal it directly.
func (srv *reservationService) GetOccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	if !checkIn.Before(checkOut) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	ids, err := srv.reservations.FindOccupiedPropertyIDs(ctx, location, checkIn, checkOut)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find occupied properties")
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// CreateReservation books a property for the given window.
func (srv *reservationService) CreateReservation(ctx context.Context, principal *entity.Principal, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	if !input.CheckIn.Before(input.CheckOut) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	reservation := &entity.Reservation{
		ID:          uuid.New(),
		PropertyID:  input.PropertyID,
		Location:    input.Location,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		GuestNumber: input.GuestNumber,
	}

	if err := srv.reservations.Create(ctx, reservation); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	srv.logger.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", reservation.ID.String()),
		slog.String("property_id", reservation.PropertyID.String()),
		slog.String("user_id", principal.ID.String()))

	return reservation, nil
}

// DeleteAllByPropertyID removes every reservation of a property. Deleting
// zero rows succeeds; the call is idempotent so the property catalog can
// retry its cleanup safely.
func (srv *reservationService) DeleteAllByPropertyID(ctx context.Context, propertyID uuid.UUID) error {
	if err := srv.reservations.DeleteByPropertyID(ctx, propertyID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reservations")
	}

	return nil
}
