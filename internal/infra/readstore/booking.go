package readstore

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/pkg/pgconv"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.kos_id, k.name, k.owner_id, b.user_id, u.email,
       b.check_in, b.check_out, b.duration_months, b.total_price, b.status, b.notes,
       b.created_at, b.updated_at
FROM bookings b
JOIN kos k ON k.id = b.kos_id
JOIN users u ON u.id = b.user_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+`WHERE b.id = $1`, id)

	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.KosID, &v.KosName, &v.KosOwnerID, &v.UserID, &v.UserEmail,
		&v.CheckIn, &v.CheckOut, &v.Duration, &v.TotalPrice, &v.Status, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingListSQL = `
SELECT b.id, b.kos_id, k.name, b.check_in, b.check_out, b.duration_months,
       b.total_price, b.status, b.created_at
FROM bookings b
JOIN kos k ON k.id = b.kos_id
`

// FindByRenter lists the bookings a renter has made, newest first.
func (r *BookingReadStore) FindByRenter(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+`WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by renter", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

// FindByOwner lists incoming bookings across all listings the seller owns.
func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+`WHERE k.owner_id = $1 ORDER BY b.created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

// FindAll lists every booking, newest first. Admin use only.
func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+`ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookingListItems(rows rowScanner) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.KosID, &item.KosName, &item.CheckIn, &item.CheckOut,
			&item.Duration, &item.TotalPrice, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
