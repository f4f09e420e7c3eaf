package usecase

import (
	"context"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertySummary is one row of a search or owner-listing page.
type PropertySummary struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	PricePerNight  float64   `json:"pricePerNight"`
	MaxGuestNumber int       `json:"maxGuestNumber"`
	Image          string    `json:"image"`
}

// PageProperties is a paged result: the total count under the search
// predicate plus one page of rows computed from that same predicate.
type PageProperties struct {
	TotalElements int64              `json:"totalElements"`
	Properties    []*PropertySummary `json:"properties"`
}

// PropertyAggregate is the composite read model for one property, merging
// catalog data with the owner's current directory record. It is assembled per
// request and never persisted.
type PropertyAggregate struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	PropertyType   string         `json:"propertyType"`
	GuestSpace     string         `json:"guestSpace"`
	MaxGuestNumber int            `json:"maxGuestNumber"`
	BedroomNumber  int            `json:"bedroomNumber"`
	BathNumber     int            `json:"bathNumber"`
	PricePerNight  float64        `json:"pricePerNight"`
	Address        entity.Address `json:"address"`
	Amenities      []string       `json:"amenities"`
	Images         []string       `json:"images"`
	OwnerID        uuid.UUID      `json:"ownerId"`
	OwnerFirstName string         `json:"ownerFirstName"`
	OwnerLastName  string         `json:"ownerLastName"`
	OwnerImage     string         `json:"ownerImage"`
}

// SearchPropertiesInput defines a property search request.
type SearchPropertiesInput struct {
	Location    string
	CheckIn     time.Time
	CheckOut    time.Time
	GuestNumber int
	CurrentPage int
}

// CreatePropertyInput defines the data required to list a new property.
type CreatePropertyInput struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    string   `json:"description"`
	PropertyType   string   `json:"propertyType" validate:"required"`
	GuestSpace     string   `json:"guestSpace" validate:"required"`
	MaxGuestNumber int      `json:"maxGuestNumber" validate:"required,min=1"`
	BedroomNumber  int      `json:"bedroomNumber" validate:"min=0"`
	BathNumber     int      `json:"bathNumber" validate:"min=0"`
	PricePerNight  float64  `json:"pricePerNight" validate:"required,gt=0"`
	Country        string   `json:"country" validate:"required"`
	City           string   `json:"city" validate:"required"`
	PostCode       string   `json:"postCode"`
	Street         string   `json:"street"`
	StreetNumber   string   `json:"streetNumber"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
}

// CountryDetails is the public country lookup DTO.
type CountryDetails struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PropertyUsecase defines the interface for property catalog operations.
type PropertyUsecase interface {
	// SearchProperties returns the availability-filtered page for the given
	// location and date window. Properties with an overlapping reservation
	// are excluded from both the page and the total.
	SearchProperties(ctx context.Context, input *SearchPropertiesInput) (*PageProperties, error)

	// GetPropertiesByOwner lists the principal's own properties.
	GetPropertiesByOwner(ctx context.Context, principal *entity.Principal, currentPage int) (*PageProperties, error)

	// GetPropertyAggregate assembles the full read model for one property,
	// including the owner's current name and image.
	GetPropertyAggregate(ctx context.Context, propertyID uuid.UUID) (*PropertyAggregate, error)

	// CreateProperty lists a new property owned by the principal.
	CreateProperty(ctx context.Context, principal *entity.Principal, input *CreatePropertyInput) (*PropertyAggregate, error)

	// DeleteProperty removes one of the principal's properties and requests
	// reservation cleanup from the owning service.
	DeleteProperty(ctx context.Context, principal *entity.Principal, propertyID uuid.UUID) error

	// GetCountries returns countries matching the name prefix.
	GetCountries(ctx context.Context, name string) ([]*CountryDetails, error)
}
