package impl

import (
	"context"
	"log/slog"
	"time"

	"booking/config"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/domain/service"
	"booking/internal/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// propertyService implements the usecase.PropertyUsecase interface.
type propertyService struct {
	logger       *slog.Logger
	cfg          *config.Config
	properties   repository.PropertyRepository
	countries    repository.CountryRepository
	reservations service.ReservationClient
	directory    service.UserClient
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(
	logger *slog.Logger,
	cfg *config.Config,
	properties repository.PropertyRepository,
	countries repository.CountryRepository,
	reservations service.ReservationClient,
	directory service.UserClient,
) usecase.PropertyUsecase {
	return &propertyService{
		logger:       logger,
		cfg:          cfg,
		properties:   properties,
		countries:    countries,
		reservations: reservations,
		directory:    directory,
	}
}

// SearchProperties resolves the occupied-property exclusion set, then computes
// the page and its total from one shared predicate. A failed availability
// lookup fails the whole request; silently ignoring it would show properties
// that cannot be booked.
func (srv *propertyService) SearchProperties(ctx context.Context, input *usecase.SearchPropertiesInput) (*usecase.PageProperties, error) {
	if !input.CheckIn.Before(input.CheckOut) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	occupied, err := srv.reservations.OccupiedPropertyIDs(ctx, input.Location, input.CheckIn, input.CheckOut)
	if err != nil {
		srv.logger.ErrorContext(ctx, "occupied property lookup failed",
			slog.String("location", input.Location),
			slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("availability lookup failed")
	}
	if len(occupied) == 0 {
		// NOT IN over an empty set is malformed SQL; the nil uuid can never
		// collide with a real property id.
		occupied = []uuid.UUID{uuid.Nil}
	}

	filter := repository.SearchFilter{
		Location:    input.Location,
		GuestNumber: input.GuestNumber,
		ExcludedIDs: occupied,
	}

	page := input.CurrentPage
	if page < 0 {
		page = 0
	}
	pageSize := srv.cfg.PageSize()

	var (
		total      int64
		properties []*entity.Property
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var countErr error
		total, countErr = srv.properties.CountSearch(groupCtx, filter)

		return countErr
	})
	group.Go(func() error {
		var searchErr error
		properties, searchErr = srv.properties.Search(groupCtx, filter, page*pageSize, pageSize)

		return searchErr
	})
	if err := group.Wait(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search properties")
	}

	return &usecase.PageProperties{
		TotalElements: total,
		Properties:    toPropertySummaries(properties),
	}, nil
}

// GetPropertiesByOwner lists the principal's own properties.
func (srv *propertyService) GetPropertiesByOwner(ctx context.Context, principal *entity.Principal, currentPage int) (*usecase.PageProperties, error) {
	if currentPage < 0 {
		currentPage = 0
	}
	pageSize := srv.cfg.PageSize()

	var (
		total      int64
		properties []*entity.Property
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var countErr error
		total, countErr = srv.properties.CountByOwner(groupCtx, principal.ID)

		return countErr
	})
	group.Go(func() error {
		var findErr error
		properties, findErr = srv.properties.FindByOwner(groupCtx, principal.ID, currentPage*pageSize, pageSize)

		return findErr
	})
	if err := group.Wait(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list owner properties")
	}

	return &usecase.PageProperties{
		TotalElements: total,
		Properties:    toPropertySummaries(properties),
	}, nil
}

// GetPropertyAggregate loads the property, then resolves the owner through the
// user directory. The aggregate is all or nothing; a missing owner or an
// unreachable directory fails the request rather than returning partial data.
func (srv *propertyService) GetPropertyAggregate(ctx context.Context, propertyID uuid.UUID) (*usecase.PropertyAggregate, error) {
	property, err := srv.properties.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load property")
	}

	owner, err := srv.directory.GetUserByID(ctx, property.OwnerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("property owner missing from directory")
		}

		srv.logger.ErrorContext(ctx, "owner lookup failed",
			slog.String("property_id", propertyID.String()),
			slog.String("owner_id", property.OwnerID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("owner lookup failed")
	}

	return toPropertyAggregate(property, owner), nil
}

// CreateProperty lists a new property owned by the principal.
func (srv *propertyService) CreateProperty(ctx context.Context, principal *entity.Principal, input *usecase.CreatePropertyInput) (*usecase.PropertyAggregate, error) {
	property := &entity.Property{
		Title:          input.Title,
		Description:    input.Description,
		PropertyType:   input.PropertyType,
		GuestSpace:     input.GuestSpace,
		MaxGuestNumber: input.MaxGuestNumber,
		BedroomNumber:  input.BedroomNumber,
		BathNumber:     input.BathNumber,
		PricePerNight:  input.PricePerNight,
		OwnerID:        principal.ID,
		Address: entity.Address{
			Country:      input.Country,
			City:         input.City,
			PostCode:     input.PostCode,
			Street:       input.Street,
			StreetNumber: input.StreetNumber,
		},
		Amenities: input.Amenities,
		Images:    input.Images,
	}

	if err := srv.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	owner := &entity.User{
		ID:        principal.ID,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
	}

	return toPropertyAggregate(property, owner), nil
}

// DeleteProperty removes one of the principal's properties, then asks the
// reservation service to drop the orphaned bookings. The delete itself is
// authoritative; cleanup failures are retried and finally surfaced in the
// audit log instead of rolling the delete back.
func (srv *propertyService) DeleteProperty(ctx context.Context, principal *entity.Principal, propertyID uuid.UUID) error {
	property, err := srv.properties.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load property")
	}

	if property.OwnerID != principal.ID && !principal.HasAuthority(entity.AuthorityFromRole("admin")) {
		return domainerrors.ErrForbidden.WrapMessage("only the owner may delete a property")
	}

	if err := srv.properties.Delete(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return err
	}

	srv.cleanupReservations(ctx, propertyID)

	return nil
}

// cleanupReservations is the compensating half of a property delete. Bookings
// left behind only cause false negatives in search, so after the retries are
// exhausted the failure is logged for operators and not propagated.
func (srv *propertyService) cleanupReservations(ctx context.Context, propertyID uuid.UUID) {
	backoff := srv.cfg.Cleanup.InitialBackoff
	maxAttempts := srv.cfg.Cleanup.MaxAttempts

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = srv.reservations.DeleteReservationsByProperty(ctx, propertyID)
		if lastErr == nil {
			return
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			attempt = maxAttempts
		case <-time.After(backoff):
			backoff *= 2
		}
	}

	srv.logger.ErrorContext(ctx, "reservation cleanup failed, reservations orphaned",
		slog.String("property_id", propertyID.String()),
		slog.Int("attempts", maxAttempts),
		slog.Any("error", lastErr))
}

// GetCountries returns countries matching the name prefix.
func (srv *propertyService) GetCountries(ctx context.Context, name string) ([]*usecase.CountryDetails, error) {
	countries, err := srv.countries.FindByNamePrefix(ctx, name)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up countries")
	}

	result := make([]*usecase.CountryDetails, 0, len(countries))
	for _, country := range countries {
		result = append(result, &usecase.CountryDetails{
			ID:   country.ID,
			Name: country.Name,
		})
	}

	return result, nil
}

func toPropertySummary(property *entity.Property) *usecase.PropertySummary {
	summary := &usecase.PropertySummary{
		ID:             property.ID,
		Title:          property.Title,
		City:           property.Address.City,
		Country:        property.Address.Country,
		PricePerNight:  property.PricePerNight,
		MaxGuestNumber: property.MaxGuestNumber,
	}
	if len(property.Images) > 0 {
		summary.Image = property.Images[0]
	}

	return summary
}

func toPropertySummaries(properties []*entity.Property) []*usecase.PropertySummary {
	summaries := make([]*usecase.PropertySummary, 0, len(properties))
	for _, property := range properties {
		summaries = append(summaries, toPropertySummary(property))
	}

	return summaries
}

func toPropertyAggregate(property *entity.Property, owner *entity.User) *usecase.PropertyAggregate {
	return &usecase.PropertyAggregate{
		ID:             property.ID,
		Title:          property.Title,
		Description:    property.Description,
		PropertyType:   property.PropertyType,
		GuestSpace:     property.GuestSpace,
		MaxGuestNumber: property.MaxGuestNumber,
		BedroomNumber:  property.BedroomNumber,
		BathNumber:     property.BathNumber,
		PricePerNight:  property.PricePerNight,
		Address:        property.Address,
		Amenities:      property.Amenities,
		Images:         property.Images,
		OwnerID:        property.OwnerID,
		OwnerFirstName: owner.FirstName,
		OwnerLastName:  owner.LastName,
		OwnerImage:     owner.Image,
	}
}
