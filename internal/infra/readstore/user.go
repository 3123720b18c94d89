package readstore

import (
	"context"

	"koskita/internal/infra"
	"koskita/internal/infra/db"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"koskita/internal/pkg/pgconv"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userByEmailSQL = `
SELECT id, email, role, password_hash, is_active, last_login
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
		lastLogin    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, userByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.Role, &passwordHash, &view.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, passwordHash, nil
}

const userByIDSQL = `
SELECT id, email, role, is_active, last_login
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view      queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, userByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, nil
}
