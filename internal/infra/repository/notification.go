package repository

import (
	"context"

	"homeshine/internal/infra"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, recipient_id, kind, payload, status, created_at)
VALUES ($1, $2, $3, $4, 'queued', now())`

// CreateJob enqueues a delivery job in the same transaction as the state
// change it announces, so a rolled-back workflow never notifies anyone.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, recipientID uuid.UUID, kind string, payload []byte) error {
	if _, err := tx.Exec(ctx, createNotificationJobSQL, uuid.New(), recipientID, kind, payload); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
