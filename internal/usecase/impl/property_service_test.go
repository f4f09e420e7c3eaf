package impl

import (
	"context"
	"testing"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/domain/service"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSearchInput() *usecase.SearchPropertiesInput {
	return &usecase.SearchPropertiesInput{
		Location:    "Lisbon",
		CheckIn:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		GuestNumber: 2,
		CurrentPage: 0,
	}
}

func testProperty(ownerID uuid.UUID) *entity.Property {
	return &entity.Property{
		ID:             uuid.New(),
		Title:          "Sea view flat",
		Description:    "Two bedrooms near the beach",
		PropertyType:   "apartment",
		GuestSpace:     "entire place",
		MaxGuestNumber: 4,
		BedroomNumber:  2,
		BathNumber:     1,
		PricePerNight:  120,
		OwnerID:        ownerID,
		Address: entity.Address{
			Country: "Portugal",
			City:    "Lisbon",
		},
		Amenities: []string{"wifi", "kitchen"},
		Images:    []string{"properties/1/cover.jpg", "properties/1/room.jpg"},
	}
}

func TestSearchProperties_SeedsSentinelWhenNothingOccupied(t *testing.T) {
	var countFilter, searchFilter repository.SearchFilter
	var gotOffset, gotLimit int

	propertyRepo := &stubPropertyRepo{
		countSearch: func(_ context.Context, filter repository.SearchFilter) (int64, error) {
			countFilter = filter

			return 1, nil
		},
		search: func(_ context.Context, filter repository.SearchFilter, offset, limit int) ([]*entity.Property, error) {
			searchFilter = filter
			gotOffset, gotLimit = offset, limit

			return []*entity.Property{testProperty(uuid.New())}, nil
		},
	}
	reservationClient := &stubReservationClient{
		occupiedPropertyIDs: func(context.Context, string, time.Time, time.Time) ([]uuid.UUID, error) {
			return nil, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, nil)

	page, err := svc.SearchProperties(context.Background(), testSearchInput())
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{uuid.Nil}, searchFilter.ExcludedIDs)
	assert.Equal(t, searchFilter, countFilter, "count and page must share one predicate")
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Properties, 1)
	assert.Equal(t, "properties/1/cover.jpg", page.Properties[0].Image)
	assert.Equal(t, "Lisbon", page.Properties[0].City)
	assert.Equal(t, "Portugal", page.Properties[0].Country)
}

func TestSearchProperties_ExcludesOccupiedProperties(t *testing.T) {
	occupied := []uuid.UUID{uuid.New(), uuid.New()}

	var searchFilter repository.SearchFilter
	propertyRepo := &stubPropertyRepo{
		countSearch: func(context.Context, repository.SearchFilter) (int64, error) {
			return 0, nil
		},
		search: func(_ context.Context, filter repository.SearchFilter, _, _ int) ([]*entity.Property, error) {
			searchFilter = filter

			return nil, nil
		},
	}
	reservationClient := &stubReservationClient{
		occupiedPropertyIDs: func(context.Context, string, time.Time, time.Time) ([]uuid.UUID, error) {
			return occupied, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, nil)

	page, err := svc.SearchProperties(context.Background(), testSearchInput())
	require.NoError(t, err)

	assert.Equal(t, occupied, searchFilter.ExcludedIDs)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Empty(t, page.Properties)
}

func TestSearchProperties_PagesByConfiguredSize(t *testing.T) {
	var gotOffset, gotLimit int
	propertyRepo := &stubPropertyRepo{
		countSearch: func(context.Context, repository.SearchFilter) (int64, error) {
			return 12, nil
		},
		search: func(_ context.Context, _ repository.SearchFilter, offset, limit int) ([]*entity.Property, error) {
			gotOffset, gotLimit = offset, limit

			return nil, nil
		},
	}
	reservationClient := &stubReservationClient{
		occupiedPropertyIDs: func(context.Context, string, time.Time, time.Time) ([]uuid.UUID, error) {
			return nil, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, nil)

	input := testSearchInput()
	input.CurrentPage = 2

	_, err := svc.SearchProperties(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 5, gotLimit)
}

func TestSearchProperties_AvailabilityLookupFailureFailsRequest(t *testing.T) {
	reservationClient := &stubReservationClient{
		occupiedPropertyIDs: func(context.Context, string, time.Time, time.Time) ([]uuid.UUID, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), &stubPropertyRepo{}, nil, reservationClient, nil)

	_, err := svc.SearchProperties(context.Background(), testSearchInput())
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestSearchProperties_RejectsInvalidDateRange(t *testing.T) {
	svc := NewPropertyService(testLogger(), testConfig(), &stubPropertyRepo{}, nil, &stubReservationClient{}, nil)

	input := testSearchInput()
	input.CheckIn, input.CheckOut = input.CheckOut, input.CheckIn

	_, err := svc.SearchProperties(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestGetPropertyAggregate_MergesOwnerProfile(t *testing.T) {
	ownerID := uuid.New()
	property := testProperty(ownerID)

	propertyRepo := &stubPropertyRepo{
		findByID: func(_ context.Context, id uuid.UUID) (*entity.Property, error) {
			assert.Equal(t, property.ID, id)

			return property, nil
		},
	}
	userClient := &stubUserClient{
		getUserByID: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			assert.Equal(t, ownerID, id)

			return &entity.User{
				ID:        ownerID,
				FirstName: "Jane",
				LastName:  "Doe",
				Image:     "users/jane.jpg",
			}, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, userClient)

	aggregate, err := svc.GetPropertyAggregate(context.Background(), property.ID)
	require.NoError(t, err)

	assert.Equal(t, property.ID, aggregate.ID)
	assert.Equal(t, ownerID, aggregate.OwnerID)
	assert.Equal(t, "Jane", aggregate.OwnerFirstName)
	assert.Equal(t, "Doe", aggregate.OwnerLastName)
	assert.Equal(t, "users/jane.jpg", aggregate.OwnerImage)
	assert.Equal(t, property.Amenities, aggregate.Amenities)
	assert.Equal(t, property.Images, aggregate.Images)
}

func TestGetPropertyAggregate_PropertyMissing(t *testing.T) {
	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return nil, repository.ErrPropertyNotFound
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, &stubUserClient{})

	_, err := svc.GetPropertyAggregate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestGetPropertyAggregate_OwnerLookupNeverPartial(t *testing.T) {
	property := testProperty(uuid.New())
	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
	}

	t.Run("owner missing", func(t *testing.T) {
		userClient := &stubUserClient{
			getUserByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return nil, service.ErrUserNotFound
			},
		}
		svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, userClient)

		aggregate, err := svc.GetPropertyAggregate(context.Background(), property.ID)
		assert.Nil(t, aggregate)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("directory unreachable", func(t *testing.T) {
		userClient := &stubUserClient{
			getUserByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return nil, errors.New("timeout")
			},
		}
		svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, userClient)

		aggregate, err := svc.GetPropertyAggregate(context.Background(), property.ID)
		assert.Nil(t, aggregate)
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	})
}

func TestCreateProperty_AssignsOwnerFromPrincipal(t *testing.T) {
	principal := testPrincipal()

	var created *entity.Property
	propertyRepo := &stubPropertyRepo{
		create: func(_ context.Context, property *entity.Property) error {
			property.ID = uuid.New()
			created = property

			return nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, &stubUserClient{})

	aggregate, err := svc.CreateProperty(context.Background(), principal, &usecase.CreatePropertyInput{
		Title:          "Sea view flat",
		PropertyType:   "apartment",
		GuestSpace:     "entire place",
		MaxGuestNumber: 4,
		PricePerNight:  120,
		Country:        "Portugal",
		City:           "Lisbon",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, principal.ID, created.OwnerID)
	assert.Equal(t, created.ID, aggregate.ID)
	assert.Equal(t, principal.FirstName, aggregate.OwnerFirstName)
}

func TestDeleteProperty_OwnerOnly(t *testing.T) {
	owner := testPrincipal()
	stranger := testPrincipal()
	property := testProperty(owner.ID)

	deleted := false
	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		delete: func(context.Context, uuid.UUID) error {
			deleted = true

			return nil
		},
	}
	reservationClient := &stubReservationClient{
		deleteReservationsByProperty: func(context.Context, uuid.UUID) error {
			return nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, &stubUserClient{})

	err := svc.DeleteProperty(context.Background(), stranger, property.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, deleted)

	err = svc.DeleteProperty(context.Background(), owner, property.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteProperty_AdminMayDeleteAnyProperty(t *testing.T) {
	admin := testPrincipal(entity.AuthorityFromRole("admin"))
	property := testProperty(uuid.New())

	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		delete: func(context.Context, uuid.UUID) error {
			return nil
		},
	}
	reservationClient := &stubReservationClient{
		deleteReservationsByProperty: func(context.Context, uuid.UUID) error {
			return nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, &stubUserClient{})

	assert.NoError(t, svc.DeleteProperty(context.Background(), admin, property.ID))
}

func TestDeleteProperty_CleanupRetriesUntilSuccess(t *testing.T) {
	owner := testPrincipal()
	property := testProperty(owner.ID)

	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		delete: func(context.Context, uuid.UUID) error {
			return nil
		},
	}

	attempts := 0
	reservationClient := &stubReservationClient{
		deleteReservationsByProperty: func(context.Context, uuid.UUID) error {
			attempts++
			if attempts < 3 {
				return errors.New("temporarily unavailable")
			}

			return nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, &stubUserClient{})

	require.NoError(t, svc.DeleteProperty(context.Background(), owner, property.ID))
	assert.Equal(t, 3, attempts)
}

func TestDeleteProperty_CleanupExhaustionDoesNotFailDelete(t *testing.T) {
	owner := testPrincipal()
	property := testProperty(owner.ID)

	propertyRepo := &stubPropertyRepo{
		findByID: func(context.Context, uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		delete: func(context.Context, uuid.UUID) error {
			return nil
		},
	}

	attempts := 0
	reservationClient := &stubReservationClient{
		deleteReservationsByProperty: func(context.Context, uuid.UUID) error {
			attempts++

			return errors.New("still down")
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, reservationClient, &stubUserClient{})

	require.NoError(t, svc.DeleteProperty(context.Background(), owner, property.ID))
	assert.Equal(t, 3, attempts)
}

func TestGetPropertiesByOwner_ReturnsPage(t *testing.T) {
	owner := testPrincipal()

	propertyRepo := &stubPropertyRepo{
		countByOwner: func(_ context.Context, ownerID uuid.UUID) (int64, error) {
			assert.Equal(t, owner.ID, ownerID)

			return 7, nil
		},
		findByOwner: func(_ context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Property, error) {
			assert.Equal(t, owner.ID, ownerID)
			assert.Equal(t, 5, offset)
			assert.Equal(t, 5, limit)

			return []*entity.Property{testProperty(owner.ID)}, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), propertyRepo, nil, &stubReservationClient{}, &stubUserClient{})

	page, err := svc.GetPropertiesByOwner(context.Background(), owner, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.TotalElements)
	assert.Len(t, page.Properties, 1)
}

func TestGetCountries_MapsLookupRecords(t *testing.T) {
	countryRepo := &stubCountryRepo{
		findByNamePrefix: func(_ context.Context, prefix string) ([]*entity.Country, error) {
			assert.Equal(t, "Po", prefix)

			return []*entity.Country{{ID: 1, Name: "Poland"}, {ID: 2, Name: "Portugal"}}, nil
		},
	}

	svc := NewPropertyService(testLogger(), testConfig(), &stubPropertyRepo{}, countryRepo, &stubReservationClient{}, &stubUserClient{})

	countries, err := svc.GetCountries(context.Background(), "Po")
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Poland", countries[0].Name)
	assert.Equal(t, int64(2), countries[1].ID)
}
