package kos

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kos is a rentable boarding-house listing owned by a seller. The monthly
// price is read at booking time; changing it later never reprices bookings
// that already exist.
type Kos struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         Name
	address      string
	city         string
	description  string
	monthlyPrice MonthlyPrice
	roomTotal    int
	genderPolicy GenderPolicy
	isPublished  bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewKos(
	ownerID uuid.UUID,
	name Name,
	address, city, description string,
	monthlyPrice MonthlyPrice,
	roomTotal int,
	genderPolicy GenderPolicy,
) (*Kos, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if roomTotal <= 0 {
		return nil, ErrInvalidRoomTotal
	}

	return &Kos{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         name,
		address:      address,
		city:         strings.TrimSpace(city),
		description:  strings.TrimSpace(description),
		monthlyPrice: monthlyPrice,
		roomTotal:    roomTotal,
		genderPolicy: genderPolicy,
		isPublished:  true,
	}, nil
}

func (k *Kos) ID() uuid.UUID              { return k.id }
func (k *Kos) OwnerID() uuid.UUID         { return k.ownerID }
func (k *Kos) Name() Name                 { return k.name }
func (k *Kos) Address() string            { return k.address }
func (k *Kos) City() string               { return k.city }
func (k *Kos) Description() string        { return k.description }
func (k *Kos) MonthlyPrice() MonthlyPrice { return k.monthlyPrice }
func (k *Kos) RoomTotal() int             { return k.roomTotal }
func (k *Kos) GenderPolicy() GenderPolicy { return k.genderPolicy }
func (k *Kos) IsPublished() bool          { return k.isPublished }
func (k *Kos) CreatedAt() time.Time       { return k.createdAt }
func (k *Kos) UpdatedAt() time.Time       { return k.updatedAt }

func (k *Kos) IsOwnedBy(userID uuid.UUID) bool {
	return k.ownerID == userID
}
