package postgres

import (
	"context"

	"booking/internal/domain/entity"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// countryRepository implements the repository.CountryRepository interface.
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{
		db: db,
	}
}

// FindByNamePrefix returns countries whose name starts with the given prefix,
// case-insensitively, ordered by name.
func (repo *countryRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel

	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", prefix+"%").
		Order("name").
		Find(&countryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find countries by name prefix")
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, &entity.Country{ID: countryM.ID, Name: countryM.Name})
	}

	return countries, nil
}
