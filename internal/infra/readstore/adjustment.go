package readstore

import (
	"context"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/pgconv"
	"homeshine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdjustmentReadStore struct {
	dbtx db.DBTX
}

func NewAdjustmentReadStore(dbtx db.DBTX) *AdjustmentReadStore {
	return &AdjustmentReadStore{dbtx: dbtx}
}

const findAdjustmentViewSQL = `
SELECT id, appointment_id, home_id, cleaner_id, homeowner_id,
       original_beds, original_bath_halves, reported_beds, reported_bath_halves,
       original_price_cents, new_price_cents, status, cleaner_note,
       homeowner_response, owner_note, resolver_id, final_beds, final_bath_halves,
       charge_status, pricing_config_version, expires_at, created_at, updated_at
FROM adjustment_requests
WHERE id = $1`

func (r *AdjustmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdjustmentView, error) {
	row := r.dbtx.QueryRow(ctx, findAdjustmentViewSQL, id)

	var (
		view               queries.AdjustmentView
		originalBathHalves int32
		reportedBathHalves int32
		homeownerResponse  pgtype.Text
		ownerNote          pgtype.Text
		resolverID         pgtype.UUID
		finalBeds          pgtype.Int4
		finalBathHalves    pgtype.Int4
	)
	err := row.Scan(
		&view.ID, &view.AppointmentID, &view.HomeID, &view.CleanerID, &view.HomeownerID,
		&view.OriginalBeds, &originalBathHalves, &view.ReportedBeds, &reportedBathHalves,
		&view.OriginalPriceCents, &view.NewPriceCents, &view.Status, &view.CleanerNote,
		&homeownerResponse, &ownerNote, &resolverID, &finalBeds, &finalBathHalves,
		&view.ChargeStatus, &view.PricingConfigVersion, &view.ExpiresAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("adjustment request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find adjustment request", err)
	}

	view.OriginalBaths = pricing.BathCount(originalBathHalves).Float()
	view.ReportedBaths = pricing.BathCount(reportedBathHalves).Float()
	view.PriceDifferenceCents = view.NewPriceCents - view.OriginalPriceCents
	view.HomeownerResponse = pgconv.StringPtrFromPgtype(homeownerResponse)
	view.OwnerNote = pgconv.StringPtrFromPgtype(ownerNote)
	view.ResolverID = pgconv.UUIDPtrFromPgtype(resolverID)
	view.FinalBeds = pgconv.Int32PtrFromPgtype(finalBeds)
	if halves := pgconv.Int32PtrFromPgtype(finalBathHalves); halves != nil {
		f := pricing.BathCount(*halves).Float()
		view.FinalBaths = &f
	}

	if view.Photos, err = r.photosForRequest(ctx, id); err != nil {
		return nil, err
	}
	if view.Trust, err = r.trustForParties(ctx, view.HomeownerID, view.CleanerID); err != nil {
		return nil, err
	}
	return &view, nil
}

const photosForRequestSQL = `
SELECT id, room_type, room_number, payload, created_at
FROM evidence_photos
WHERE request_id = $1
ORDER BY room_type, room_number`

func (r *AdjustmentReadStore) photosForRequest(ctx context.Context, requestID uuid.UUID) ([]queries.EvidencePhotoView, error) {
	rows, err := r.dbtx.Query(ctx, photosForRequestSQL, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list evidence photos", err)
	}
	defer rows.Close()

	var photos []queries.EvidencePhotoView
	for rows.Next() {
		var p queries.EvidencePhotoView
		if err := rows.Scan(&p.ID, &p.RoomType, &p.RoomNumber, &p.Payload, &p.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan evidence photo", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate evidence photos", err)
	}
	return photos, nil
}

const trustCountsSQL = `
SELECT id, false_home_size_count, false_claim_count
FROM users
WHERE id = ANY($1)`

const auditNotesSQL = `
SELECT user_id, resolver_id, note, created_at
FROM audit_notes
WHERE user_id = ANY($1)
ORDER BY created_at`

func (r *AdjustmentReadStore) trustForParties(ctx context.Context, homeownerID, cleanerID uuid.UUID) (*queries.TrustSignalView, error) {
	parties := []uuid.UUID{homeownerID, cleanerID}

	rows, err := r.dbtx.Query(ctx, trustCountsSQL, parties)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load trust counters", err)
	}
	defer rows.Close()

	var trust queries.TrustSignalView
	for rows.Next() {
		var (
			id                              uuid.UUID
			falseHomeSizeCount, falseClaims int32
		)
		if err := rows.Scan(&id, &falseHomeSizeCount, &falseClaims); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trust counters", err)
		}
		if id == homeownerID {
			trust.HomeownerFalseHomeSizeCount = falseHomeSizeCount
		}
		if id == cleanerID {
			trust.CleanerFalseClaimCount = falseClaims
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trust counters", err)
	}

	noteRows, err := r.dbtx.Query(ctx, auditNotesSQL, parties)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load audit notes", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n queries.AuditNoteView
		if err := noteRows.Scan(&n.UserID, &n.ResolverID, &n.Note, &n.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit note", err)
		}
		trust.OwnerPrivateNotes = append(trust.OwnerPrivateNotes, n)
	}
	if err := noteRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit notes", err)
	}

	return &trust, nil
}

const listItemColumns = `
SELECT id, appointment_id, home_id, status,
       reported_beds, reported_bath_halves,
       new_price_cents, new_price_cents - original_price_cents,
       charge_status, expires_at, created_at
FROM adjustment_requests`

const listPendingForHomeownerSQL = listItemColumns + `
WHERE homeowner_id = $1 AND status = $2
ORDER BY created_at DESC`

func (r *AdjustmentReadStore) ListPendingForHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*queries.AdjustmentListItem, error) {
	return r.listItems(ctx, listPendingForHomeownerSQL, homeownerID, adjustment.StatusPendingHomeowner.String())
}

const listAwaitingResolutionSQL = listItemColumns + `
WHERE status = $1 OR (status = $2 AND expires_at < $3)
ORDER BY created_at`

func (r *AdjustmentReadStore) ListAwaitingResolution(ctx context.Context, now time.Time) ([]*queries.AdjustmentListItem, error) {
	return r.listItems(ctx, listAwaitingResolutionSQL,
		adjustment.StatusPendingOwner.String(), adjustment.StatusPendingHomeowner.String(), now)
}

const listByHomeSQL = listItemColumns + `
WHERE home_id = $1
ORDER BY created_at DESC`

func (r *AdjustmentReadStore) ListByHome(ctx context.Context, homeID uuid.UUID) ([]*queries.AdjustmentListItem, error) {
	return r.listItems(ctx, listByHomeSQL, homeID)
}

func (r *AdjustmentReadStore) listItems(ctx context.Context, sql string, args ...any) ([]*queries.AdjustmentListItem, error) {
	rows, err := r.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list adjustment requests", err)
	}
	defer rows.Close()

	var items []*queries.AdjustmentListItem
	for rows.Next() {
		var (
			item               queries.AdjustmentListItem
			reportedBathHalves int32
		)
		err := rows.Scan(
			&item.ID, &item.AppointmentID, &item.HomeID, &item.Status,
			&item.ReportedBeds, &reportedBathHalves,
			&item.NewPriceCents, &item.PriceDifferenceCents,
			&item.ChargeStatus, &item.ExpiresAt, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan adjustment request", err)
		}
		item.ReportedBaths = pricing.BathCount(reportedBathHalves).Float()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate adjustment requests", err)
	}
	return items, nil
}

const homeOwnerIDSQL = `
SELECT owner_id FROM homes WHERE id = $1`

func (r *AdjustmentReadStore) HomeOwnerID(ctx context.Context, homeID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	if err := r.dbtx.QueryRow(ctx, homeOwnerIDSQL, homeID).Scan(&ownerID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("home not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find home", err)
	}
	return ownerID, nil
}
