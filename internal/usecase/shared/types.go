package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type KosSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	City         string
	MonthlyPrice int64
	IsPublished  bool
}

type BookingSnapshot struct {
	ID         uuid.UUID
	KosID      uuid.UUID
	KosOwnerID uuid.UUID
	UserID     uuid.UUID
	Status     string
	CheckIn    time.Time
	CheckOut   time.Time
	Duration   int
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	KosID     uuid.UUID
	UserID    uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// UpdateKosParams carries partial listing updates; nil fields are untouched.
type UpdateKosParams struct {
	Name         *string
	Address      *string
	City         *string
	Description  *string
	MonthlyPrice *int64
	RoomTotal    *int
	GenderPolicy *string
	IsPublished  *bool
}
