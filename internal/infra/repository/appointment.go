package repository

import (
	"context"

	"homeshine/internal/infra"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const updateAppointmentPriceSQL = `
UPDATE appointments SET price_cents = $2, updated_at = now() WHERE id = $1`

func (r *AppointmentRepository) UpdatePrice(ctx context.Context, tx db.DBTX, appointmentID uuid.UUID, priceCents int64) error {
	tag, err := tx.Exec(ctx, updateAppointmentPriceSQL, appointmentID, priceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
