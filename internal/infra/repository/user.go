package repository

import (
	"context"

	"homeshine/internal/infra"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const incrementFalseHomeSizeSQL = `
UPDATE users SET false_home_size_count = false_home_size_count + 1, updated_at = now() WHERE id = $1`

const incrementFalseClaimSQL = `
UPDATE users SET false_claim_count = false_claim_count + 1, updated_at = now() WHERE id = $1`

const appendAuditNoteSQL = `
INSERT INTO audit_notes (id, user_id, resolver_id, note, created_at)
VALUES ($1, $2, $3, $4, now())`

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

// Counters only move up, by exactly one per adverse resolution.
func (r *UserRepository) IncrementFalseHomeSizeCount(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	return r.increment(ctx, tx, incrementFalseHomeSizeSQL, userID, "failed to increment false home size count")
}

func (r *UserRepository) IncrementFalseClaimCount(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	return r.increment(ctx, tx, incrementFalseClaimSQL, userID, "failed to increment false claim count")
}

func (r *UserRepository) increment(ctx context.Context, tx db.DBTX, sql string, userID uuid.UUID, msg string) error {
	tag, err := tx.Exec(ctx, sql, userID)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// AppendAuditNote inserts a fresh row; history is append-only by
// construction.
func (r *UserRepository) AppendAuditNote(ctx context.Context, tx db.DBTX, userID, resolverID uuid.UUID, note string) error {
	if _, err := tx.Exec(ctx, appendAuditNoteSQL, uuid.New(), userID, resolverID, note); err != nil {
		return infra.WrapRepoErr("failed to append audit note", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
