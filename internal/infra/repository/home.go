package repository

import (
	"context"

	"homeshine/internal/domain/pricing"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type HomeRepository struct{}

func NewHomeRepository() *HomeRepository {
	return &HomeRepository{}
}

const updateHomeSizeSQL = `
UPDATE homes SET num_beds = $2, bath_halves = $3, updated_at = now() WHERE id = $1`

// UpdateSize is the only write path for a home's size of record; it runs
// exclusively inside an approved adjustment resolution.
func (r *HomeRepository) UpdateSize(ctx context.Context, tx db.DBTX, homeID uuid.UUID, beds pricing.BedCount, baths pricing.BathCount) error {
	tag, err := tx.Exec(ctx, updateHomeSizeSQL, homeID, beds.Int(), baths.Halves())
	if err != nil {
		return infra.WrapRepoErr("failed to update home size", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("home not found", nil, infra.KindNotFound)
	}
	return nil
}
