package repository

import (
	"context"

	"koskita/internal/infra/db"

	"github.com/google/uuid"
)

type FavoriteRepository struct{}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

// ON CONFLICT DO NOTHING makes re-favoriting idempotent.
func (r *FavoriteRepository) Add(ctx context.Context, tx db.DBTX, userID, kosID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO favorites (user_id, kos_id) VALUES ($1, $2) ON CONFLICT (user_id, kos_id) DO NOTHING`,
		userID, kosID,
	)
	if err != nil {
		return wrapPgErr("failed to add favorite", err)
	}
	return nil
}

// Remove deletes the pair if present. Deleting an absent favorite succeeds,
// matching Add's idempotency.
func (r *FavoriteRepository) Remove(ctx context.Context, tx db.DBTX, userID, kosID uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND kos_id = $2`, userID, kosID)
	if err != nil {
		return wrapPgErr("failed to remove favorite", err)
	}
	return nil
}
