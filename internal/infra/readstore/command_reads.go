package readstore

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/pkg/pgconv"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the write side with minimal snapshots, keeping
// command usecases off the richer read models.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const kosSnapshotSQL = `
SELECT id, owner_id, name, city, monthly_price, is_published
FROM kos
WHERE id = $1`

func (r *CommandReads) KosByID(ctx context.Context, id uuid.UUID) (*shared.KosSnapshot, error) {
	var snap shared.KosSnapshot
	err := r.db.QueryRow(ctx, kosSnapshotSQL, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.City, &snap.MonthlyPrice, &snap.IsPublished,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("kos not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find kos snapshot", err)
	}
	return &snap, nil
}

const bookingSnapshotSQL = `
SELECT b.id, b.kos_id, k.owner_id, b.user_id, b.status, b.check_in, b.check_out, b.duration_months
FROM bookings b
JOIN kos k ON k.id = b.kos_id
WHERE b.id = $1`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.KosID, &snap.KosOwnerID, &snap.UserID, &snap.Status,
		&snap.CheckIn, &snap.CheckOut, &snap.Duration,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking snapshot", err)
	}
	return &snap, nil
}

const reviewSnapshotSQL = `
SELECT id, kos_id, user_id, booking_id, rating, comment
FROM reviews
WHERE id = $1`

func (r *CommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	var snap shared.ReviewSnapshot
	err := r.db.QueryRow(ctx, reviewSnapshotSQL, id).Scan(
		&snap.ID, &snap.KosID, &snap.UserID, &snap.BookingID, &snap.Rating, &snap.Comment,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review snapshot", err)
	}
	return &snap, nil
}

const reviewExistsSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

func (r *CommandReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, reviewExistsSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
