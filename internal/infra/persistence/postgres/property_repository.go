package postgres

import (
	"context"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// searchScope builds the single WHERE clause shared by Search and CountSearch.
// Total and page contents are derived from the same predicate, so they cannot
// drift apart.
func searchScope(filter repository.SearchFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("city = ?", filter.Location).
			Where("max_guest_number >= ?", filter.GuestNumber).
			Where("id NOT IN ?", filter.ExcludedIDs)
	}
}

// Search returns one page of properties matching the filter, ordered by id.
func (repo *propertyRepository) Search(ctx context.Context, filter repository.SearchFilter, offset, limit int) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Scopes(searchScope(filter)).
		Preload("Country").
		Preload("Images").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	return toPropertyDomains(propertyModels), nil
}

// CountSearch returns the total number of properties matching the filter.
func (repo *propertyRepository) CountSearch(ctx context.Context, filter repository.SearchFilter) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Scopes(searchScope(filter)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count properties")
	}

	return count, nil
}

// FindByID retrieves a property with its amenities, images and country.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Preload("Country").
		Preload("Amenities").
		Preload("Images").
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindByOwner returns one page of the owner's properties, ordered by id.
func (repo *propertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Country").
		Preload("Images").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by owner")
	}

	return toPropertyDomains(propertyModels), nil
}

// CountByOwner returns the total number of the owner's properties.
func (repo *propertyRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count properties by owner")
	}

	return count, nil
}

// Create persists a property with its amenity and image rows in one
// transaction. The country association is resolved by name, creating the
// lookup row on first use.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var countryM model.CountryModel
		if err := tx.Where("name = ?", property.Address.Country).
			FirstOrCreate(&countryM, model.CountryModel{Name: property.Address.Country}).Error; err != nil {
			return errors.Wrap(err, "failed to resolve country")
		}

		propertyM := fromPropertyDomain(property)
		propertyM.CountryID = countryM.ID

		if err := tx.Create(propertyM).Error; err != nil {
			return errors.Wrap(err, "failed to insert property")
		}

		property.ID = propertyM.ID
		property.CreatedAt = propertyM.CreatedAt
		property.UpdatedAt = propertyM.UpdatedAt

		return nil
	})
	if err != nil {
		if isNotNullConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPropertyCreationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	return nil
}

// Delete removes a property and its amenity/image rows. Reservations are
// owned by another service and cleaned up by a compensating call.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyAmenityModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete property amenities")
		}
		if err := tx.Where("property_id = ?", id).Delete(&model.PropertyImageModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete property images")
		}

		result := tx.Where("id = ?", id).Delete(&model.PropertyModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete property")
		}
		if result.RowsAffected == 0 {
			return repository.ErrPropertyNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete property")
	}

	return nil
}

func toPropertyDomain(propertyM *model.PropertyModel) *entity.Property {
	property := &entity.Property{
		ID:             propertyM.ID,
		Title:          propertyM.Title,
		Description:    propertyM.Description,
		PropertyType:   propertyM.PropertyType,
		GuestSpace:     propertyM.GuestSpace,
		MaxGuestNumber: propertyM.MaxGuestNumber,
		BedroomNumber:  propertyM.BedroomNumber,
		BathNumber:     propertyM.BathNumber,
		PricePerNight:  propertyM.PricePerNight,
		OwnerID:        propertyM.OwnerID,
		Address: entity.Address{
			City:         propertyM.City,
			PostCode:     propertyM.PostCode,
			Street:       propertyM.Street,
			StreetNumber: propertyM.StreetNumber,
		},
		CreatedAt: propertyM.CreatedAt,
		UpdatedAt: propertyM.UpdatedAt,
	}
	if propertyM.Country != nil {
		property.Address.Country = propertyM.Country.Name
	}
	for _, amenity := range propertyM.Amenities {
		property.Amenities = append(property.Amenities, amenity.Name)
	}
	for _, image := range propertyM.Images {
		property.Images = append(property.Images, image.Path)
	}

	return property
}

func toPropertyDomains(propertyModels []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}

func fromPropertyDomain(property *entity.Property) *model.PropertyModel {
	propertyM := &model.PropertyModel{
		ID:             property.ID,
		Title:          property.Title,
		Description:    property.Description,
		PropertyType:   property.PropertyType,
		GuestSpace:     property.GuestSpace,
		MaxGuestNumber: property.MaxGuestNumber,
		BedroomNumber:  property.BedroomNumber,
		BathNumber:     property.BathNumber,
		PricePerNight:  property.PricePerNight,
		OwnerID:        property.OwnerID,
		City:           property.Address.City,
		PostCode:       property.Address.PostCode,
		Street:         property.Address.Street,
		StreetNumber:   property.Address.StreetNumber,
	}
	for _, amenity := range property.Amenities {
		propertyM.Amenities = append(propertyM.Amenities, model.PropertyAmenityModel{Name: amenity})
	}
	for _, image := range property.Images {
		propertyM.Images = append(propertyM.Images, model.PropertyImageModel{Path: image})
	}

	return propertyM
}
