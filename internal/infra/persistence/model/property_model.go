package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Owner is a foreign key into
// another service's store, so it is a bare UUID column here.
type PropertyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	PropertyType   string    `gorm:"type:varchar(50);not null"`
	GuestSpace     string    `gorm:"type:varchar(50);not null"`
	MaxGuestNumber int       `gorm:"not null"`
	BedroomNumber  int
	BathNumber     int
	PricePerNight  float64   `gorm:"not null"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index;not null"`
	City           string    `gorm:"type:varchar(100);index;not null"`
	PostCode       string    `gorm:"type:varchar(20)"`
	Street         string    `gorm:"type:varchar(255)"`
	StreetNumber   string    `gorm:"type:varchar(20)"`
	CountryID      int64
	Country        *CountryModel         `gorm:"foreignKey:CountryID"`
	Amenities      []PropertyAmenityModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Images         []PropertyImageModel   `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// PropertyAmenityModel mirrors the 'property_amenities' table.
type PropertyAmenityModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyAmenityModel) TableName() string {
	return "property_amenities"
}

// PropertyImageModel mirrors the 'property_images' table. Path points into
// the image bucket.
type PropertyImageModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null"`
	Path       string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyImageModel) TableName() string {
	return "property_images"
}

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID   int64  `gorm:"primary_key;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
