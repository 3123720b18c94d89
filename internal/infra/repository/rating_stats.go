package repository

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// Recalculated inside the same transaction as the review write so the stats
// row never drifts from the reviews table.
const recalcRatingStatsSQL = `
INSERT INTO kos_rating_stats (kos_id, review_count, rating_avg, updated_at)
SELECT $1, COUNT(*), COALESCE(AVG(rating), 0), now()
FROM reviews
WHERE kos_id = $1
ON CONFLICT (kos_id) DO UPDATE
SET review_count = EXCLUDED.review_count,
    rating_avg   = EXCLUDED.rating_avg,
    updated_at   = EXCLUDED.updated_at`

func (r *RatingStatsRepository) RecalcKosRatingStats(ctx context.Context, tx db.DBTX, kosID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRatingStatsSQL, kosID); err != nil {
		return infra.WrapRepoErr("failed to recalc kos rating stats", err)
	}
	return nil
}
