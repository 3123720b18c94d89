package repository

import (
	"context"

	"koskita/internal/domain/review"
	"koskita/internal/infra"
	"koskita/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, kos_id, user_id, booking_id, rating, comment)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.KosID(),
		rev.UserID(),
		rev.BookingID(),
		rev.Rating().Value(),
		rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rating int, comment string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reviews SET rating = $2, comment = $3, updated_at = now() WHERE id = $1`,
		reviewID, rating, comment,
	)
	if err != nil {
		return wrapPgErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return wrapPgErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
