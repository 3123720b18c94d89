package readstore

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewsByKosSQL = `
SELECT r.id, r.kos_id, r.user_id, u.email, r.booking_id, r.rating, r.comment,
       r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.kos_id = $1
ORDER BY r.created_at DESC`

func (r *ReviewReadStore) FindByKos(ctx context.Context, kosID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, reviewsByKosSQL, kosID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by kos", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		err := rows.Scan(
			&v.ID, &v.KosID, &v.UserID, &v.UserEmail, &v.BookingID, &v.Rating, &v.Comment,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}
