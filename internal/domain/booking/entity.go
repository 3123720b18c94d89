package booking

import (
	"errors"
	"time"

	"koskita/internal/domain/kos"
	"koskita/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrOwnKosBooking     = errors.New("owner cannot book their own kos")
	ErrBookingNotMutable = errors.New("booking is in a terminal state")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// KosSpec is the slice of a listing the booking rules need: who owns it and
// what it costs per month at creation time.
type KosSpec struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	MonthlyPrice kos.MonthlyPrice
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id         uuid.UUID
	kosID      uuid.UUID
	userID     uuid.UUID
	period     StayPeriod
	status     Status
	totalPrice int64
	notes      Notes
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds a pending booking for a renter against a listing.
// The total price is fixed here from the listing's current monthly rate and
// never recomputed, even if the listing is repriced later.
func NewBooking(
	services *Services,
	spec KosSpec,
	userID uuid.UUID,
	period StayPeriod,
	notes Notes,
) (*Booking, error) {
	if spec.OwnerID == userID {
		return nil, ErrOwnKosBooking
	}
	if err := period.ValidateNotPastAt(services.Clock.Now()); err != nil {
		return nil, err
	}

	total := services.PriceCalculator.TotalPrice(spec.MonthlyPrice, period)
	if total < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		kosID:      spec.ID,
		userID:     userID,
		period:     period,
		status:     StatusPending,
		totalPrice: total,
		notes:      notes,
	}, nil
}

func ReconstructBooking(
	id, kosID, userID uuid.UUID,
	period StayPeriod,
	status Status,
	totalPrice int64,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		kosID:      kosID,
		userID:     userID,
		period:     period,
		status:     status,
		totalPrice: totalPrice,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo applies a status edge. Re-applying the current status is an
// idempotent no-op so clients can safely retry updates.
func (b *Booking) TransitionTo(target Status) error {
	if target == b.status {
		return nil
	}
	if b.status.IsTerminal() {
		return ErrBookingNotMutable
	}
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	return nil
}

func (b *Booking) ID() uuid.UUID      { return b.id }
func (b *Booking) KosID() uuid.UUID   { return b.kosID }
func (b *Booking) UserID() uuid.UUID  { return b.userID }
func (b *Booking) Period() StayPeriod { return b.period }
func (b *Booking) Status() Status     { return b.status }
func (b *Booking) TotalPrice() int64  { return b.totalPrice }
func (b *Booking) Notes() Notes       { return b.notes }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status == StatusPending || b.status == StatusConfirmed
}
