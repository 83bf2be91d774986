package db_models

import "github.com/google/uuid"

// Booking is a point-in-time record of a confirmed selection. DetailsJSON is
// the serialized TripSelection captured at booking time; it is never updated.
type Booking struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	DateRange   string
	TotalCost   float64
	Status      string
	Image       string
	DetailsJSON string `gorm:"type:jsonb"`
}
