//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/internal/domain/user"
	reqdto "homeshine/internal/handler/dto/request"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/clock"
	"homeshine/internal/usecase/commands"
	"homeshine/internal/usecase/shared"
	"homeshine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolveNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func commandConfig() pricing.Config {
	return pricing.Config{
		BasePriceCents:       15000,
		ExtraBedBathFeeCents: 5000,
		HalfBathFeeCents:     2500,
		Linens: pricing.LinenFees{
			SheetFeePerBedCents: 3000,
			TowelFeeCents:       500,
			FaceClothFeeCents:   200,
		},
		TimeWindows:  map[string]int64{"10-3": 2500},
		LastMinute:   pricing.LastMinuteConfig{FeeCents: 5000, ThresholdHours: 24},
		Cancellation: pricing.CancellationConfig{FeeCents: 5000, WindowDays: 2, RefundPercentage: 0.5},
		Platform:     pricing.PlatformConfig{FeePercent: 0.2},
	}
}

type fakeReads struct {
	appointments map[uuid.UUID]*shared.AppointmentSnapshot
	home         *shared.HomeSnapshot
	config       *shared.PricingConfigSnapshot
	future       []*shared.AppointmentSnapshot
	futureFrom   time.Time
}

func (r *fakeReads) AppointmentByID(_ context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return appt, nil
}

func (r *fakeReads) HomeByID(_ context.Context, id uuid.UUID) (*shared.HomeSnapshot, error) {
	if r.home == nil || r.home.ID != id {
		return nil, infra.WrapRepoErr("home not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.home, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return &shared.UserSnapshot{ID: id, Role: user.RoleHomeowner, IsActive: true}, nil
}

func (r *fakeReads) ActivePricingConfig(context.Context) (*shared.PricingConfigSnapshot, error) {
	return r.config, nil
}

func (r *fakeReads) PricingConfigByVersion(_ context.Context, version int32) (*shared.PricingConfigSnapshot, error) {
	if r.config == nil || r.config.Version != version {
		return nil, infra.WrapRepoErr("pricing config not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.config, nil
}

func (r *fakeReads) FutureAppointmentsForHome(_ context.Context, _ uuid.UUID, from time.Time) ([]*shared.AppointmentSnapshot, error) {
	r.futureFrom = from
	return r.future, nil
}

type fakeAdjustmentRepo struct {
	request      *adjustment.Request
	updates      int
	chargeWrites []adjustment.ChargeStatus
}

func (f *fakeAdjustmentRepo) Create(_ context.Context, _ db.DBTX, req *adjustment.Request) (uuid.UUID, error) {
	f.request = req
	return req.ID(), nil
}

func (f *fakeAdjustmentRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*adjustment.Request, error) {
	if f.request == nil || f.request.ID() != id {
		return nil, infra.WrapRepoErr("adjustment request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return f.request, nil
}

func (f *fakeAdjustmentRepo) Update(_ context.Context, _ db.DBTX, _ *adjustment.Request) error {
	f.updates++
	return nil
}

func (f *fakeAdjustmentRepo) UpdateChargeStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status adjustment.ChargeStatus) error {
	f.chargeWrites = append(f.chargeWrites, status)
	return nil
}

type fakeEvidenceRepo struct {
	batches int
}

func (f *fakeEvidenceRepo) CreateBatch(_ context.Context, _ db.DBTX, _ uuid.UUID, _ []adjustment.EvidencePhoto) error {
	f.batches++
	return nil
}

type sizeWrite struct {
	homeID uuid.UUID
	beds   pricing.BedCount
	baths  pricing.BathCount
}

type fakeHomeRepo struct {
	writes []sizeWrite
}

func (f *fakeHomeRepo) UpdateSize(_ context.Context, _ db.DBTX, homeID uuid.UUID, beds pricing.BedCount, baths pricing.BathCount) error {
	f.writes = append(f.writes, sizeWrite{homeID: homeID, beds: beds, baths: baths})
	return nil
}

type priceWrite struct {
	appointmentID uuid.UUID
	priceCents    int64
}

type fakeAppointmentRepo struct {
	writes  []priceWrite
	failFor map[uuid.UUID]error
}

func (f *fakeAppointmentRepo) UpdatePrice(_ context.Context, _ db.DBTX, appointmentID uuid.UUID, priceCents int64) error {
	if err, ok := f.failFor[appointmentID]; ok {
		return err
	}
	f.writes = append(f.writes, priceWrite{appointmentID: appointmentID, priceCents: priceCents})
	return nil
}

type auditWrite struct {
	userID     uuid.UUID
	resolverID uuid.UUID
	note       string
}

type fakeUserRepo struct {
	falseHomeSize []uuid.UUID
	falseClaim    []uuid.UUID
	notes         []auditWrite
}

func (f *fakeUserRepo) IncrementFalseHomeSizeCount(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	f.falseHomeSize = append(f.falseHomeSize, userID)
	return nil
}

func (f *fakeUserRepo) IncrementFalseClaimCount(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	f.falseClaim = append(f.falseClaim, userID)
	return nil
}

func (f *fakeUserRepo) AppendAuditNote(_ context.Context, _ db.DBTX, userID, resolverID uuid.UUID, note string) error {
	f.notes = append(f.notes, auditWrite{userID: userID, resolverID: resolverID, note: note})
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type notificationWrite struct {
	recipientID uuid.UUID
	kind        string
}

type fakeNotificationRepo struct {
	jobs []notificationWrite
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, recipientID uuid.UUID, kind string, _ []byte) error {
	f.jobs = append(f.jobs, notificationWrite{recipientID: recipientID, kind: kind})
	return nil
}

func (f *fakeNotificationRepo) kinds() []string {
	out := make([]string, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j.kind)
	}
	return out
}

type fakeTx struct {
	adjustments   *fakeAdjustmentRepo
	evidence      *fakeEvidenceRepo
	homes         *fakeHomeRepo
	appointments  *fakeAppointmentRepo
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	reads         *fakeReads
}

func (t *fakeTx) Adjustments() shared.AdjustmentRepository     { return t.adjustments }
func (t *fakeTx) Evidence() shared.EvidenceRepository          { return t.evidence }
func (t *fakeTx) Homes() shared.HomeRepository                 { return t.homes }
func (t *fakeTx) Appointments() shared.AppointmentRepository   { return t.appointments }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeUoW struct {
	tx          *fakeTx
	withinCalls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeGateway struct {
	result *commands.ChargeResult
	err    error
	calls  int
}

func (g *fakeGateway) ChargeCustomer(_ context.Context, _ uuid.UUID, _ int64, _ string) (*commands.ChargeResult, error) {
	g.calls++
	return g.result, g.err
}

type commandsFixture struct {
	cmds    commands.AdjustmentCommands
	tx      *fakeTx
	uow     *fakeUoW
	reads   *fakeReads
	gateway *fakeGateway
	clk     *clock.MockClock
	request *adjustment.Request
}

// newCommandsFixture wires the command layer over in-memory fakes, seeded
// with one request and its appointment, home, and pricing config.
func newCommandsFixture(t *testing.T, b *builder.AdjustmentBuilder) *commandsFixture {
	t.Helper()

	request, err := b.BuildDomain()
	require.NoError(t, err)

	reads := &fakeReads{
		appointments: map[uuid.UUID]*shared.AppointmentSnapshot{
			request.AppointmentID(): {
				ID:          request.AppointmentID(),
				HomeID:      request.HomeID(),
				HomeownerID: request.HomeownerID(),
				TimeWindow:  pricing.TimeWindowAnytime,
				PriceCents:  request.OriginalPriceCents(),
				CleanerIDs:  []uuid.UUID{request.CleanerID()},
			},
		},
		home: &shared.HomeSnapshot{
			ID:      request.HomeID(),
			OwnerID: request.HomeownerID(),
			Beds:    request.OriginalBeds(),
			Baths:   request.OriginalBaths(),
		},
		config: &shared.PricingConfigSnapshot{Version: request.PricingConfigVersion(), Config: commandConfig()},
	}

	tx := &fakeTx{
		adjustments:   &fakeAdjustmentRepo{request: request},
		evidence:      &fakeEvidenceRepo{},
		homes:         &fakeHomeRepo{},
		appointments:  &fakeAppointmentRepo{},
		users:         &fakeUserRepo{},
		notifications: &fakeNotificationRepo{},
		reads:         reads,
	}
	uow := &fakeUoW{tx: tx}
	gateway := &fakeGateway{result: &commands.ChargeResult{Succeeded: true, Reference: "ch_test"}}
	clk := clock.NewMockClock(resolveNow)

	reconciler := commands.NewLedgerReconciler(uow, tx.appointments, clk)
	cmds := commands.NewAdjustmentCommands(uow, tx.adjustments, gateway, reconciler, clk)

	return &commandsFixture{
		cmds:    cmds,
		tx:      tx,
		uow:     uow,
		reads:   reads,
		gateway: gateway,
		clk:     clk,
		request: request,
	}
}

func approvePtr(v bool) *bool { return &v }

func TestOwnerResolve(t *testing.T) {
	ctx := context.Background()
	resolverID := uuid.New()

	t.Run("overruling a dispute marks the homeowner's record", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		require.NoError(t, f.request.Dispute("house is not that big", resolveNow.Add(time.Hour)))
		f.clk.Set(resolveNow.Add(2 * time.Hour))

		result, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleOwner, f.request.ID(),
			reqdto.OwnerResolveRequest{Approve: approvePtr(true), OwnerNote: "listing photos confirm the claim"})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusOwnerApproved, result.Status)

		require.Len(t, f.tx.users.falseHomeSize, 1)
		assert.Equal(t, f.request.HomeownerID(), f.tx.users.falseHomeSize[0])
		assert.Empty(t, f.tx.users.falseClaim)

		require.Len(t, f.tx.users.notes, 1)
		assert.Equal(t, f.request.HomeownerID(), f.tx.users.notes[0].userID)
		assert.Equal(t, resolverID, f.tx.users.notes[0].resolverID)
	})

	t.Run("approving an expired unanswered request marks no one", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		f.clk.Set(resolveNow.Add(25 * time.Hour))

		result, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleHumanResources, f.request.ID(),
			reqdto.OwnerResolveRequest{Approve: approvePtr(true), OwnerNote: "window lapsed, claim stands"})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusOwnerApproved, result.Status)

		assert.Empty(t, f.tx.users.falseHomeSize)
		assert.Empty(t, f.tx.users.falseClaim)
		assert.Empty(t, f.tx.users.notes)
	})

	t.Run("denial marks the cleaner and leaves the ledger untouched", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		require.NoError(t, f.request.Dispute("no third bedroom", resolveNow.Add(time.Hour)))
		f.clk.Set(resolveNow.Add(2 * time.Hour))

		result, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleOwner, f.request.ID(),
			reqdto.OwnerResolveRequest{Approve: approvePtr(false), OwnerNote: "record verified on site"})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusOwnerDenied, result.Status)
		assert.Equal(t, adjustment.ChargeWaived, result.ChargeStatus)

		require.Len(t, f.tx.users.falseClaim, 1)
		assert.Equal(t, f.request.CleanerID(), f.tx.users.falseClaim[0])
		assert.Empty(t, f.tx.users.falseHomeSize)

		assert.Empty(t, f.tx.homes.writes)
		assert.Empty(t, f.tx.appointments.writes)
		assert.Zero(t, f.gateway.calls)
	})

	t.Run("resolver overrides reprice with the corrected size", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		require.NoError(t, f.request.Dispute("only two baths up there", resolveNow.Add(time.Hour)))
		f.clk.Set(resolveNow.Add(2 * time.Hour))

		finalBeds := "3"
		finalBaths := "2"
		result, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleOwner, f.request.ID(),
			reqdto.OwnerResolveRequest{
				Approve:    approvePtr(true),
				OwnerNote:  "half bath is a closet",
				FinalBeds:  &finalBeds,
				FinalBaths: &finalBaths,
			})
		require.NoError(t, err)
		assert.Equal(t, 3, result.FinalBeds.Int())
		assert.InDelta(t, 2.0, result.FinalBaths.Float(), 0.001)

		// 15000 base + 2 extra beds and 1 extra full bath at 5000 each
		require.Len(t, f.tx.appointments.writes, 1)
		assert.Equal(t, f.request.AppointmentID(), f.tx.appointments.writes[0].appointmentID)
		assert.Equal(t, int64(30000), f.tx.appointments.writes[0].priceCents)

		require.Len(t, f.tx.homes.writes, 1)
		assert.Equal(t, 3, f.tx.homes.writes[0].beds.Int())
		assert.InDelta(t, 2.0, f.tx.homes.writes[0].baths.Float(), 0.001)
	})

	t.Run("non-authority is rejected before anything is read", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))

		_, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleHomeowner, f.request.ID(),
			reqdto.OwnerResolveRequest{Approve: approvePtr(true), OwnerNote: "n/a"})
		assert.ErrorIs(t, err, commands.ErrEscalationAuthorityRequired)
		assert.Zero(t, f.uow.withinCalls)
	})

	t.Run("unanswered request inside the window is not resolvable", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		f.clk.Set(resolveNow.Add(23 * time.Hour))

		_, err := f.cmds.OwnerResolve(ctx, resolverID, user.RoleOwner, f.request.ID(),
			reqdto.OwnerResolveRequest{Approve: approvePtr(true), OwnerNote: "too early"})
		assert.ErrorIs(t, err, commands.ErrInvalidRequestStatus)
		assert.Empty(t, f.tx.users.falseHomeSize)
		assert.Empty(t, f.tx.users.falseClaim)
	})
}

func TestHomeownerRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("approval vindicates the cleaner and marks no one", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		f.clk.Set(resolveNow.Add(time.Hour))

		result, err := f.cmds.HomeownerRespond(ctx, f.request.HomeownerID(), f.request.ID(),
			reqdto.HomeownerResponseRequest{Approve: approvePtr(true)})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusApproved, result.Status)

		assert.Empty(t, f.tx.users.falseHomeSize)
		assert.Empty(t, f.tx.users.falseClaim)

		require.Len(t, f.tx.homes.writes, 1)
		assert.Equal(t, f.request.HomeID(), f.tx.homes.writes[0].homeID)
		require.Len(t, f.tx.appointments.writes, 1)
		assert.Equal(t, f.request.NewPriceCents(), f.tx.appointments.writes[0].priceCents)

		assert.Equal(t, 1, f.gateway.calls)
		require.NotEmpty(t, f.tx.adjustments.chargeWrites)
		assert.Equal(t, adjustment.ChargeSucceeded, f.tx.adjustments.chargeWrites[len(f.tx.adjustments.chargeWrites)-1])
	})

	t.Run("price decrease waives the charge and skips the gateway", func(t *testing.T) {
		b := builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow)
		b.OriginalPriceCents = 30000
		b.NewPriceCents = 22500
		f := newCommandsFixture(t, b)
		f.clk.Set(resolveNow.Add(time.Hour))

		result, err := f.cmds.HomeownerRespond(ctx, f.request.HomeownerID(), f.request.ID(),
			reqdto.HomeownerResponseRequest{Approve: approvePtr(true)})
		require.NoError(t, err)
		assert.Equal(t, adjustment.ChargeWaived, result.ChargeStatus)
		assert.Zero(t, f.gateway.calls)
		assert.Empty(t, f.tx.adjustments.chargeWrites)
	})

	t.Run("gateway failure never unwinds the resolution", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		f.gateway.result = nil
		f.gateway.err = errors.New("card declined")
		f.clk.Set(resolveNow.Add(time.Hour))

		result, err := f.cmds.HomeownerRespond(ctx, f.request.HomeownerID(), f.request.ID(),
			reqdto.HomeownerResponseRequest{Approve: approvePtr(true)})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusApproved, result.Status)

		require.NotEmpty(t, f.tx.adjustments.chargeWrites)
		assert.Equal(t, adjustment.ChargeFailed, f.tx.adjustments.chargeWrites[len(f.tx.adjustments.chargeWrites)-1])
		require.Len(t, f.tx.homes.writes, 1)
	})

	t.Run("dispute hands the request to escalation without touching the ledger", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))
		f.clk.Set(resolveNow.Add(time.Hour))

		result, err := f.cmds.HomeownerRespond(ctx, f.request.HomeownerID(), f.request.ID(),
			reqdto.HomeownerResponseRequest{Approve: approvePtr(false), Reason: "no extra bedroom"})
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusPendingOwner, result.Status)

		assert.Empty(t, f.tx.homes.writes)
		assert.Empty(t, f.tx.appointments.writes)
		assert.Zero(t, f.gateway.calls)
		assert.Contains(t, f.tx.notifications.kinds(), commands.NotifyRequestDisputed)
	})

	t.Run("a stranger cannot respond", func(t *testing.T) {
		f := newCommandsFixture(t, builder.NewAdjustmentBuilder().WithCreatedAt(resolveNow))

		_, err := f.cmds.HomeownerRespond(ctx, uuid.New(), f.request.ID(),
			reqdto.HomeownerResponseRequest{Approve: approvePtr(true)})
		assert.ErrorIs(t, err, commands.ErrNotHomeowner)
	})
}
