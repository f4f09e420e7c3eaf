package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table. PropertyID references a
// record in the property catalog service's store; its cleanup on property
// deletion is a cross-service call, not a database cascade.
type ReservationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Location    string    `gorm:"type:varchar(100);index;not null"`
	CheckIn     time.Time `gorm:"type:date;not null"`
	CheckOut    time.Time `gorm:"type:date;not null"`
	GuestNumber int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
