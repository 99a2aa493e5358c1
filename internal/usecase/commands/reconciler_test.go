//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeshine/internal/domain/pricing"
	"homeshine/internal/pkg/clock"
	"homeshine/internal/usecase/commands"
	"homeshine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reconcilerFixture struct {
	reconciler   *commands.LedgerReconciler
	reads        *fakeReads
	appointments *fakeAppointmentRepo
	homeID       uuid.UUID
	trigger      *shared.AppointmentSnapshot
	withLinens   *shared.AppointmentSnapshot
	plain        *shared.AppointmentSnapshot
}

// newReconcilerFixture seeds three future appointments for one home: the
// triggering one, one with sheets and towels in a surcharged window, and a
// plain one.
func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()

	homeID := uuid.New()
	trigger := &shared.AppointmentSnapshot{
		ID:         uuid.New(),
		HomeID:     homeID,
		TimeWindow: pricing.TimeWindowAnytime,
		PriceCents: 27500,
	}
	withLinens := &shared.AppointmentSnapshot{
		ID:         uuid.New(),
		HomeID:     homeID,
		TimeWindow: "10-3",
		Linens:     pricing.LinenChoice{Sheets: true, Towels: true},
		PriceCents: 31000,
	}
	plain := &shared.AppointmentSnapshot{
		ID:         uuid.New(),
		HomeID:     homeID,
		TimeWindow: pricing.TimeWindowAnytime,
		PriceCents: 20000,
	}

	reads := &fakeReads{future: []*shared.AppointmentSnapshot{trigger, withLinens, plain}}
	appointments := &fakeAppointmentRepo{}
	uow := &fakeUoW{tx: &fakeTx{appointments: appointments, reads: reads}}

	return &reconcilerFixture{
		reconciler:   commands.NewLedgerReconciler(uow, appointments, clock.NewMockClock(resolveNow)),
		reads:        reads,
		appointments: appointments,
		homeID:       homeID,
		trigger:      trigger,
		withLinens:   withLinens,
		plain:        plain,
	}
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	correctedBeds := pricing.BedCount(3)
	correctedBaths := pricing.BathCount(5)

	t.Run("reprices each remaining appointment with its own selections", func(t *testing.T) {
		f := newReconcilerFixture(t)

		report := f.reconciler.Reconcile(ctx, f.homeID, f.trigger.ID, correctedBeds, correctedBaths, commandConfig())

		require.Len(t, report.Outcomes, 2)
		assert.Zero(t, report.Failed())
		require.Len(t, f.appointments.writes, 2)

		// 32500 for the corrected size, plus 9000 sheets, 3600 towels,
		// and the 2500 window surcharge for the linened appointment
		assert.Equal(t, f.withLinens.ID, f.appointments.writes[0].appointmentID)
		assert.Equal(t, int64(47600), f.appointments.writes[0].priceCents)
		assert.Equal(t, f.plain.ID, f.appointments.writes[1].appointmentID)
		assert.Equal(t, int64(32500), f.appointments.writes[1].priceCents)
	})

	t.Run("the triggering appointment is never touched", func(t *testing.T) {
		f := newReconcilerFixture(t)

		f.reconciler.Reconcile(ctx, f.homeID, f.trigger.ID, correctedBeds, correctedBaths, commandConfig())

		for _, w := range f.appointments.writes {
			assert.NotEqual(t, f.trigger.ID, w.appointmentID)
		}
	})

	t.Run("a failed item does not block the rest", func(t *testing.T) {
		f := newReconcilerFixture(t)
		f.appointments.failFor = map[uuid.UUID]error{f.withLinens.ID: errors.New("row locked")}

		report := f.reconciler.Reconcile(ctx, f.homeID, f.trigger.ID, correctedBeds, correctedBaths, commandConfig())

		require.Len(t, report.Outcomes, 2)
		assert.Equal(t, 1, report.Failed())
		assert.Error(t, report.Outcomes[0].Err)
		assert.NoError(t, report.Outcomes[1].Err)

		require.Len(t, f.appointments.writes, 1)
		assert.Equal(t, f.plain.ID, f.appointments.writes[0].appointmentID)
		assert.Equal(t, int64(32500), f.appointments.writes[0].priceCents)
	})

	t.Run("the pass covers appointments from the start of today", func(t *testing.T) {
		f := newReconcilerFixture(t)

		f.reconciler.Reconcile(ctx, f.homeID, f.trigger.ID, correctedBeds, correctedBaths, commandConfig())

		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), f.reads.futureFrom)
	})
}
