package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a booking record owned by the reservation availability
// service. The date range is half-open: [CheckIn, CheckOut).
type Reservation struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	Location    string // City of the reserved property, denormalized for availability lookups.
	CheckIn     time.Time
	CheckOut    time.Time
	GuestNumber int
	CreatedAt   time.Time
}

// Overlaps reports whether the reservation's range intersects [checkIn, checkOut).
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)
}
