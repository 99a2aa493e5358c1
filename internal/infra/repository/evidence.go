package repository

import (
	"context"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type EvidenceRepository struct{}

func NewEvidenceRepository() *EvidenceRepository {
	return &EvidenceRepository{}
}

const createEvidencePhotoSQL = `
INSERT INTO evidence_photos (id, request_id, room_type, room_number, payload, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

// CreateBatch persists the full photo set in the creating transaction;
// photos never change afterwards.
func (r *EvidenceRepository) CreateBatch(ctx context.Context, tx db.DBTX, requestID uuid.UUID, photos []adjustment.EvidencePhoto) error {
	for _, photo := range photos {
		_, err := tx.Exec(ctx, createEvidencePhotoSQL,
			photo.ID(), requestID, string(photo.RoomType()), photo.RoomNumber(), photo.Payload(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create evidence photo", err)
		}
	}
	return nil
}
