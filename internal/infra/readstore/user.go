package readstore

import (
	"context"

	"github.com/google/uuid"

	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/pgconv"
	"homeshine/internal/usecase/queries"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active FROM users WHERE id = $1`

const findUserByEmailSQL = `
SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.dbtx.QueryRow(ctx, findUserByIDSQL, id)

	var view queries.AuthorizedUserView
	if err := row.Scan(&view.ID, &view.Email, &view.Role, &view.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.dbtx.QueryRow(ctx, findUserByEmailSQL, email)

	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	if err := row.Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
