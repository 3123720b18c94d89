package repository

import (
	"context"

	"koskita/internal/domain/kos"
	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/usecase/shared"

	"github.com/google/uuid"
)

type KosRepository struct{}

func NewKosRepository() *KosRepository {
	return &KosRepository{}
}

const createKosSQL = `
INSERT INTO kos (id, owner_id, name, address, city, description, monthly_price, room_total, gender_policy, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *KosRepository) Create(ctx context.Context, tx db.DBTX, k *kos.Kos) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createKosSQL,
		k.ID(),
		k.OwnerID(),
		k.Name().String(),
		k.Address(),
		k.City(),
		k.Description(),
		k.MonthlyPrice().Amount(),
		k.RoomTotal(),
		k.GenderPolicy().String(),
		k.IsPublished(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create kos", err)
	}
	return id, nil
}

// COALESCE keeps columns untouched when the corresponding param is nil.
const updateKosSQL = `
UPDATE kos
SET name          = COALESCE($2, name),
    address       = COALESCE($3, address),
    city          = COALESCE($4, city),
    description   = COALESCE($5, description),
    monthly_price = COALESCE($6, monthly_price),
    room_total    = COALESCE($7, room_total),
    gender_policy = COALESCE($8, gender_policy),
    is_published  = COALESCE($9, is_published),
    updated_at    = now()
WHERE id = $1`

func (r *KosRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, params shared.UpdateKosParams) error {
	tag, err := tx.Exec(ctx, updateKosSQL,
		id,
		params.Name,
		params.Address,
		params.City,
		params.Description,
		params.MonthlyPrice,
		params.RoomTotal,
		params.GenderPolicy,
		params.IsPublished,
	)
	if err != nil {
		return wrapPgErr("failed to update kos", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("kos not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *KosRepository) SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error {
	tag, err := tx.Exec(ctx, `UPDATE kos SET is_published = $2, updated_at = now() WHERE id = $1`, id, published)
	if err != nil {
		return wrapPgErr("failed to set kos published flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("kos not found", nil, infra.KindNotFound)
	}
	return nil
}

const addPhotoSQL = `
INSERT INTO kos_photos (id, kos_id, url, caption, position)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *KosRepository) AddPhoto(ctx context.Context, tx db.DBTX, kosID uuid.UUID, photo kos.Photo) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, addPhotoSQL, uuid.New(), kosID, photo.URL(), photo.Caption(), photo.Position()).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to add kos photo", err)
	}
	return id, nil
}

func (r *KosRepository) RemovePhoto(ctx context.Context, tx db.DBTX, kosID, photoID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM kos_photos WHERE id = $1 AND kos_id = $2`, photoID, kosID)
	if err != nil {
		return wrapPgErr("failed to remove kos photo", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("kos photo not found", nil, infra.KindNotFound)
	}
	return nil
}
