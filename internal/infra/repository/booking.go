package repository

import (
	"context"

	"koskita/internal/domain/booking"
	"koskita/internal/infra"
	"koskita/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, kos_id, user_id, check_in, check_out, duration_months, total_price, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var notes *string
	if !b.Notes().IsEmpty() {
		v := b.Notes().String()
		notes = &v
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.KosID(),
		b.UserID(),
		b.Period().CheckIn(),
		b.Period().CheckOut(),
		b.Period().Months(),
		b.TotalPrice(),
		b.Status().String(),
		notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create booking", err)
	}

	return id, nil
}

// Half-open overlap test: back-to-back stays sharing a boundary date are not
// a conflict.
const countOverlappingSQL = `
SELECT COUNT(*)
FROM bookings
WHERE kos_id = $1
  AND status <> 'cancelled'
  AND check_in < $3
  AND $2 < check_out`

func (r *BookingRepository) CountOverlapping(ctx context.Context, tx db.DBTX, kosID uuid.UUID, b *booking.Booking) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, countOverlappingSQL, kosID, b.Period().CheckIn(), b.Period().CheckOut()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2,
    notes = COALESCE($3, notes),
    updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, notes *string) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String(), notes)
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
