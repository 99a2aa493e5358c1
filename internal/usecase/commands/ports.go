package commands

import (
	"context"

	"github.com/google/uuid"
)

// ChargeResult is the outcome of a single synchronous gateway attempt.
type ChargeResult struct {
	Succeeded bool
	Reference string
}

// PaymentGateway is the "charge customer X amount Y" seam. One attempt per
// resolution; retry policy lives outside this subsystem.
type PaymentGateway interface {
	ChargeCustomer(ctx context.Context, customerID uuid.UUID, amountCents int64, description string) (*ChargeResult, error)
}

// Notification kinds emitted by the adjustment workflow.
const (
	NotifyRequestCreated  = "adjustment_request_created"
	NotifyRequestApproved = "adjustment_request_approved"
	NotifyRequestDisputed = "adjustment_request_disputed"
	NotifyRequestResolved = "adjustment_request_resolved"
)
