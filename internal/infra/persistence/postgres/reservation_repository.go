package postgres

import (
	"context"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{
		db: db,
	}
}

// FindOccupiedPropertyIDs returns ids of properties in the given location
// with a reservation overlapping the half-open range [checkIn, checkOut).
func (repo *reservationRepository) FindOccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	var propertyIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Distinct("property_id").
		Where("location = ?", location).
		Where("check_in < ?", checkOut).
		Where("check_out > ?", checkIn).
		Pluck("property_id", &propertyIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find occupied property ids")
	}

	return propertyIDs, nil
}

// Create persists a new reservation.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := &model.ReservationModel{
		ID:          reservation.ID,
		PropertyID:  reservation.PropertyID,
		Location:    reservation.Location,
		CheckIn:     reservation.CheckIn,
		CheckOut:    reservation.CheckOut,
		GuestNumber: reservation.GuestNumber,
	}

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt

	return nil
}

// DeleteByPropertyID removes every reservation of the given property.
// Deleting zero rows is fine; the call is idempotent by design.
func (repo *reservationRepository) DeleteByPropertyID(ctx context.Context, propertyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&model.ReservationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reservations by property")
	}

	return nil
}
