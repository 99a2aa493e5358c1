package payment

import (
	"context"
	"log/slog"

	"homeshine/internal/pkg/config"
	"homeshine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway makes one off-session payment intent per charge request.
// Retry policy for failed charges lives outside this subsystem.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	stripe.Key = cfg.StripeAPIKey
	return &StripeGateway{currency: cfg.Currency}
}

func (g *StripeGateway) ChargeCustomer(ctx context.Context, customerID uuid.UUID, amountCents int64, description string) (*commands.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(description),
		Confirm:     stripe.Bool(true),
		OffSession:  stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata("customer_id", customerID.String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	succeeded := intent.Status == stripe.PaymentIntentStatusSucceeded
	if !succeeded {
		slog.Warn("payment intent not settled",
			"intent_id", intent.ID,
			"status", string(intent.Status))
	}

	return &commands.ChargeResult{
		Succeeded: succeeded,
		Reference: intent.ID,
	}, nil
}
