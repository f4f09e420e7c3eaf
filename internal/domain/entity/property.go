package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a catalog record owned by the property catalog service.
// Cross-service data (owner profile, reservations) is referenced by id only
// and resolved at read time through the owning service.
type Property struct {
	ID             uuid.UUID
	Title          string
	Description    string
	PropertyType   string // e.g. "apartment", "house".
	GuestSpace     string // e.g. "entire place", "private room".
	MaxGuestNumber int
	BedroomNumber  int
	BathNumber     int
	PricePerNight  float64
	OwnerID        uuid.UUID // References a user directory record.
	Address        Address
	Amenities      []string
	Images         []string // Relative paths into the image bucket.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Address locates a property. Country is stored as a reference to the
// countries table and resolved by name on reads.
type Address struct {
	Country      string
	City         string
	PostCode     string
	Street       string
	StreetNumber string
}

// Country is a lookup record used by property addresses and the public
// country search endpoint.
type Country struct {
	ID   int64
	Name string
}
