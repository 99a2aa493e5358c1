package repository

import (
	"context"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdjustmentRepository struct{}

func NewAdjustmentRepository() *AdjustmentRepository {
	return &AdjustmentRepository{}
}

const createAdjustmentSQL = `
INSERT INTO adjustment_requests (
    id, appointment_id, home_id, cleaner_id, homeowner_id,
    original_beds, original_bath_halves, reported_beds, reported_bath_halves,
    original_price_cents, new_price_cents, status, cleaner_note,
    pricing_config_version, charge_status, expires_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
RETURNING id`

// Create inserts a new request. The partial unique index on unresolved
// requests makes the one-unresolved-request-per-appointment invariant a
// database guarantee; the resulting duplicate-key error surfaces as
// KindDuplicateKey.
func (r *AdjustmentRepository) Create(ctx context.Context, tx db.DBTX, req *adjustment.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAdjustmentSQL,
		req.ID(), req.AppointmentID(), req.HomeID(), req.CleanerID(), req.HomeownerID(),
		req.OriginalBeds().Int(), req.OriginalBaths().Halves(), req.ReportedBeds().Int(), req.ReportedBaths().Halves(),
		req.OriginalPriceCents(), req.NewPriceCents(), req.Status().String(), req.CleanerNote(),
		req.PricingConfigVersion(), req.ChargeStatus().String(), req.ExpiresAt(), req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create adjustment request", err)
	}
	return id, nil
}

const findAdjustmentForUpdateSQL = `
SELECT id, appointment_id, home_id, cleaner_id, homeowner_id,
       original_beds, original_bath_halves, reported_beds, reported_bath_halves,
       original_price_cents, new_price_cents, status, cleaner_note,
       homeowner_response, owner_note, resolver_id, final_beds, final_bath_halves,
       pricing_config_version, charge_status, expires_at, created_at, updated_at
FROM adjustment_requests
WHERE id = $1
FOR UPDATE`

func (r *AdjustmentRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*adjustment.Request, error) {
	row := tx.QueryRow(ctx, findAdjustmentForUpdateSQL, id)

	var (
		p                  adjustment.ReconstructParams
		originalBeds       int32
		originalBathHalves int32
		reportedBeds       int32
		reportedBathHalves int32
		status             string
		chargeStatus       string
		homeownerResponse  pgtype.Text
		ownerNote          pgtype.Text
		resolverID         pgtype.UUID
		finalBeds          pgtype.Int4
		finalBathHalves    pgtype.Int4
	)

	err := row.Scan(
		&p.ID, &p.AppointmentID, &p.HomeID, &p.CleanerID, &p.HomeownerID,
		&originalBeds, &originalBathHalves, &reportedBeds, &reportedBathHalves,
		&p.OriginalPriceCents, &p.NewPriceCents, &status, &p.CleanerNote,
		&homeownerResponse, &ownerNote, &resolverID, &finalBeds, &finalBathHalves,
		&p.PricingConfigVersion, &chargeStatus, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("adjustment request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find adjustment request", err)
	}

	p.OriginalBeds = pricing.BedCount(originalBeds)
	p.OriginalBaths = pricing.BathCount(originalBathHalves)
	p.ReportedBeds = pricing.BedCount(reportedBeds)
	p.ReportedBaths = pricing.BathCount(reportedBathHalves)
	p.Status = adjustment.Status(status)
	p.ChargeStatus = adjustment.ChargeStatus(chargeStatus)
	p.HomeownerResponse = pgconv.StringPtrFromPgtype(homeownerResponse)
	p.OwnerNote = pgconv.StringPtrFromPgtype(ownerNote)
	p.ResolverID = pgconv.UUIDPtrFromPgtype(resolverID)
	if beds := pgconv.Int32PtrFromPgtype(finalBeds); beds != nil {
		fb := pricing.BedCount(*beds)
		p.FinalBeds = &fb
	}
	if halves := pgconv.Int32PtrFromPgtype(finalBathHalves); halves != nil {
		fb := pricing.BathCount(*halves)
		p.FinalBaths = &fb
	}

	return adjustment.Reconstruct(p), nil
}

const updateAdjustmentSQL = `
UPDATE adjustment_requests
SET status = $2,
    new_price_cents = $3,
    homeowner_response = $4,
    owner_note = $5,
    resolver_id = $6,
    final_beds = $7,
    final_bath_halves = $8,
    charge_status = $9,
    updated_at = $10
WHERE id = $1`

func (r *AdjustmentRepository) Update(ctx context.Context, tx db.DBTX, req *adjustment.Request) error {
	var finalBeds, finalBathHalves pgtype.Int4
	if b := req.FinalBeds(); b != nil {
		finalBeds = pgtype.Int4{Int32: int32(b.Int()), Valid: true}
	}
	if b := req.FinalBaths(); b != nil {
		finalBathHalves = pgtype.Int4{Int32: int32(b.Halves()), Valid: true}
	}

	tag, err := tx.Exec(ctx, updateAdjustmentSQL,
		req.ID(), req.Status().String(), req.NewPriceCents(),
		pgconv.StringPtrToPgtype(req.HomeownerResponse()),
		pgconv.StringPtrToPgtype(req.OwnerNote()),
		pgconv.UUIDPtrToPgtype(req.ResolverID()),
		finalBeds, finalBathHalves,
		req.ChargeStatus().String(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update adjustment request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("adjustment request not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateChargeStatusSQL = `
UPDATE adjustment_requests SET charge_status = $2, updated_at = now() WHERE id = $1`

func (r *AdjustmentRepository) UpdateChargeStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status adjustment.ChargeStatus) error {
	if _, err := tx.Exec(ctx, updateChargeStatusSQL, id, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update charge status", err)
	}
	return nil
}
