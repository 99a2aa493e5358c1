package commands

import (
	"context"
	"log/slog"
	"time"

	"homeshine/internal/domain/pricing"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/clock"
	"homeshine/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReconcileOutcome is the per-appointment result of a ledger pass.
type ReconcileOutcome struct {
	AppointmentID uuid.UUID
	OldPriceCents int64
	NewPriceCents int64
	Err           error
}

type ReconcileReport struct {
	HomeID   uuid.UUID
	Outcomes []ReconcileOutcome
}

func (r *ReconcileReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// LedgerReconciler republishes a home's derived appointment prices after
// its size of record changes. Each update is an independent write: one
// stale appointment must not block the rest from being corrected, so this
// runs outside the resolving transaction and collects per-item outcomes
// instead of aborting.
type LedgerReconciler struct {
	uow             shared.UnitOfWork
	appointmentRepo shared.AppointmentRepository
	clock           clock.Clock
}

func NewLedgerReconciler(uow shared.UnitOfWork, appointmentRepo shared.AppointmentRepository, clk clock.Clock) *LedgerReconciler {
	return &LedgerReconciler{
		uow:             uow,
		appointmentRepo: appointmentRepo,
		clock:           clk,
	}
}

// Reconcile reprices every non-completed appointment for the home dated
// today or later, using each appointment's own linen and time-window
// choices with the corrected size. The triggering appointment is skipped;
// it was already repriced inside the resolving transaction.
func (r *LedgerReconciler) Reconcile(ctx context.Context, homeID, skipAppointmentID uuid.UUID, beds pricing.BedCount, baths pricing.BathCount, cfg pricing.Config) *ReconcileReport {
	report := &ReconcileReport{HomeID: homeID}

	now := r.clock.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	appointments, err := r.uow.CommandReads().FutureAppointmentsForHome(ctx, homeID, from)
	if err != nil {
		slog.Error("ledger reconcile: failed to list future appointments",
			"home_id", homeID, "error", err.Error())
		return report
	}

	for _, appt := range appointments {
		if appt.ID == skipAppointmentID {
			continue
		}

		newPrice := pricing.Quote(cfg, beds, baths, appt.Linens, appt.TimeWindow)
		outcome := ReconcileOutcome{
			AppointmentID: appt.ID,
			OldPriceCents: appt.PriceCents,
			NewPriceCents: newPrice,
		}

		outcome.Err = r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			return r.appointmentRepo.UpdatePrice(ctx, dbtx, appt.ID, newPrice)
		})
		if outcome.Err != nil {
			slog.Error("ledger reconcile: failed to reprice appointment",
				"home_id", homeID,
				"appointment_id", appt.ID,
				"error", outcome.Err.Error())
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	slog.Info("ledger reconciled",
		"home_id", homeID,
		"appointments", len(report.Outcomes),
		"failed", report.Failed())

	return report
}
