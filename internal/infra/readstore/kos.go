package readstore

import (
	"context"
	"fmt"
	"strings"

	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/pkg/pgconv"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
)

type KosReadStore struct {
	db db.DBTX
}

func NewKosReadStore(dbtx db.DBTX) *KosReadStore {
	return &KosReadStore{db: dbtx}
}

const kosViewSQL = `
SELECT k.id, k.owner_id, k.name, k.address, k.city, k.description,
       k.monthly_price, k.room_total, k.gender_policy, k.is_published,
       COALESCE(s.rating_avg, 0), COALESCE(s.review_count, 0),
       k.created_at, k.updated_at
FROM kos k
LEFT JOIN kos_rating_stats s ON s.kos_id = k.id
WHERE k.id = $1`

func (r *KosReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.KosView, error) {
	var v queries.KosView
	err := r.db.QueryRow(ctx, kosViewSQL, id).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Address, &v.City, &v.Description,
		&v.MonthlyPrice, &v.RoomTotal, &v.GenderPolicy, &v.IsPublished,
		&v.RatingAvg, &v.ReviewCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("kos not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find kos by ID", err)
	}

	photos, err := r.findPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Photos = photos
	return &v, nil
}

func (r *KosReadStore) findPhotos(ctx context.Context, kosID uuid.UUID) ([]queries.KosPhotoView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, url, caption, position FROM kos_photos WHERE kos_id = $1 ORDER BY position, id`,
		kosID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list kos photos", err)
	}
	defer rows.Close()

	photos := []queries.KosPhotoView{}
	for rows.Next() {
		var p queries.KosPhotoView
		if err := rows.Scan(&p.ID, &p.URL, &p.Caption, &p.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan kos photo row", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate kos photo rows", err)
	}
	return photos, nil
}

// Composite quality score: weighted rating plus dampened review and completed
// booking volume. Kept in SQL so sorting happens where the data is.
const scoreExpr = `
COALESCE(s.rating_avg, 0) * 2
  + ln(1 + COALESCE(s.review_count, 0))
  + ln(1 + (SELECT COUNT(*) FROM bookings b WHERE b.kos_id = k.id AND b.status = 'completed'))`

// Search runs the public listing search. Filters compose dynamically; only
// published listings are visible.
func (r *KosReadStore) Search(ctx context.Context, filter queries.KosSearchFilter) ([]*queries.KosListItem, error) {
	var (
		where = []string{"k.is_published"}
		args  []any
	)

	if filter.City != nil {
		args = append(args, *filter.City)
		where = append(where, fmt.Sprintf("lower(k.city) = lower($%d)", len(args)))
	}
	if filter.Gender != nil {
		args = append(args, *filter.Gender)
		where = append(where, fmt.Sprintf("k.gender_policy IN ('any', $%d)", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		where = append(where, fmt.Sprintf("k.monthly_price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		where = append(where, fmt.Sprintf("k.monthly_price <= $%d", len(args)))
	}

	var orderBy string
	switch filter.Sort {
	case queries.SortCheapest:
		orderBy = "k.monthly_price ASC, k.created_at DESC"
	case queries.SortNewest:
		orderBy = "k.created_at DESC"
	default:
		orderBy = "score DESC, k.created_at DESC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
SELECT k.id, k.name, k.city, k.monthly_price, k.gender_policy,
       COALESCE(s.rating_avg, 0), COALESCE(s.review_count, 0),
       (%s) AS score,
       k.created_at
FROM kos k
LEFT JOIN kos_rating_stats s ON s.kos_id = k.id
WHERE %s
ORDER BY %s
LIMIT $%d`, scoreExpr, strings.Join(where, " AND "), orderBy, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search kos", err)
	}
	defer rows.Close()

	return scanKosListItems(rows)
}

const kosByOwnerSQL = `
SELECT k.id, k.name, k.city, k.monthly_price, k.gender_policy,
       COALESCE(s.rating_avg, 0), COALESCE(s.review_count, 0),
       (` + scoreExpr + `) AS score,
       k.created_at
FROM kos k
LEFT JOIN kos_rating_stats s ON s.kos_id = k.id
WHERE k.owner_id = $1
ORDER BY k.created_at DESC`

// FindByOwner lists a seller's own listings, published or not.
func (r *KosReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.KosListItem, error) {
	rows, err := r.db.Query(ctx, kosByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list kos by owner", err)
	}
	defer rows.Close()

	return scanKosListItems(rows)
}

const favoritesSQL = `
SELECT k.id, k.name, k.city, k.monthly_price, k.gender_policy,
       COALESCE(s.rating_avg, 0), COALESCE(s.review_count, 0),
       (` + scoreExpr + `) AS score,
       k.created_at
FROM favorites f
JOIN kos k ON k.id = f.kos_id
LEFT JOIN kos_rating_stats s ON s.kos_id = k.id
WHERE f.user_id = $1
ORDER BY f.created_at DESC`

func (r *KosReadStore) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*queries.KosListItem, error) {
	rows, err := r.db.Query(ctx, favoritesSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	defer rows.Close()

	return scanKosListItems(rows)
}

func scanKosListItems(rows rowScanner) ([]*queries.KosListItem, error) {
	var result []*queries.KosListItem
	for rows.Next() {
		var item queries.KosListItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.City, &item.MonthlyPrice, &item.GenderPolicy,
			&item.RatingAvg, &item.ReviewCount, &item.Score, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan kos row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate kos rows", err)
	}
	return result, nil
}
