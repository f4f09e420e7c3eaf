package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"booking/config"
	"booking/internal/domain/entity"
	"booking/internal/domain/repository"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := new(config.Config)
	cfg.Search.PageSize = 5
	cfg.Cleanup.MaxAttempts = 3
	cfg.Cleanup.InitialBackoff = time.Millisecond

	return cfg
}

func testPrincipal(authorities ...entity.Authority) *entity.Principal {
	return &entity.Principal{
		ID:          uuid.New(),
		Email:       "jane.doe@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		Authorities: authorities,
	}
}

// Stubs delegate to function fields so each test wires only the calls it
// expects.

type stubUserRepo struct {
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	save        func(ctx context.Context, user *entity.User) error
	updateImage func(ctx context.Context, id uuid.UUID, path string) error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.findByID(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findByEmail(ctx, email)
}

func (s *stubUserRepo) Save(ctx context.Context, user *entity.User) error {
	return s.save(ctx, user)
}

func (s *stubUserRepo) UpdateImage(ctx context.Context, id uuid.UUID, path string) error {
	return s.updateImage(ctx, id, path)
}

type stubPropertyRepo struct {
	findByID     func(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	search       func(ctx context.Context, filter repository.SearchFilter, offset, limit int) ([]*entity.Property, error)
	countSearch  func(ctx context.Context, filter repository.SearchFilter) (int64, error)
	findByOwner  func(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Property, error)
	countByOwner func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	create       func(ctx context.Context, property *entity.Property) error
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return s.findByID(ctx, id)
}

func (s *stubPropertyRepo) Search(ctx context.Context, filter repository.SearchFilter, offset, limit int) ([]*entity.Property, error) {
	return s.search(ctx, filter, offset, limit)
}

func (s *stubPropertyRepo) CountSearch(ctx context.Context, filter repository.SearchFilter) (int64, error) {
	return s.countSearch(ctx, filter)
}

func (s *stubPropertyRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Property, error) {
	return s.findByOwner(ctx, ownerID, offset, limit)
}

func (s *stubPropertyRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return s.countByOwner(ctx, ownerID)
}

func (s *stubPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	return s.create(ctx, property)
}

func (s *stubPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type stubCountryRepo struct {
	findByNamePrefix func(ctx context.Context, prefix string) ([]*entity.Country, error)
}

func (s *stubCountryRepo) FindByNamePrefix(ctx context.Context, prefix string) ([]*entity.Country, error) {
	return s.findByNamePrefix(ctx, prefix)
}

type stubReservationClient struct {
	occupiedPropertyIDs          func(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error)
	deleteReservationsByProperty func(ctx context.Context, propertyID uuid.UUID) error
}

func (s *stubReservationClient) OccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	return s.occupiedPropertyIDs(ctx, location, checkIn, checkOut)
}

func (s *stubReservationClient) DeleteReservationsByProperty(ctx context.Context, propertyID uuid.UUID) error {
	return s.deleteReservationsByProperty(ctx, propertyID)
}

type stubUserClient struct {
	getUserByID func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (s *stubUserClient) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.getUserByID(ctx, id)
}

type stubReservationRepo struct {
	findOccupiedPropertyIDs func(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error)
	create                  func(ctx context.Context, reservation *entity.Reservation) error
	deleteByPropertyID      func(ctx context.Context, propertyID uuid.UUID) error
}

func (s *stubReservationRepo) FindOccupiedPropertyIDs(ctx context.Context, location string, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	return s.findOccupiedPropertyIDs(ctx, location, checkIn, checkOut)
}

func (s *stubReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	return s.create(ctx, reservation)
}

func (s *stubReservationRepo) DeleteByPropertyID(ctx context.Context, propertyID uuid.UUID) error {
	return s.deleteByPropertyID(ctx, propertyID)
}
