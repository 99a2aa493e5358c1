package readstore

import (
	"context"
	"encoding/json"
	"time"

	"homeshine/internal/domain/pricing"
	"homeshine/internal/domain/user"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/pgconv"
	"homeshine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the lookups command handlers need before and during
// a transaction. Handed a pool it reads committed state; handed a pgx.Tx
// it observes the transaction's own writes.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

const appointmentByIDSQL = `
SELECT a.id, a.home_id, h.owner_id, a.date, a.time_window,
       a.linen_sheets, a.linen_towels, a.towel_items,
       a.price_cents, a.completed
FROM appointments a
JOIN homes h ON h.id = a.home_id
WHERE a.id = $1`

const appointmentCleanersSQL = `
SELECT cleaner_id FROM appointment_cleaners WHERE appointment_id = $1`

func (r *CommandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	snap, err := r.scanAppointment(ctx, appointmentByIDSQL, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.dbtx.Query(ctx, appointmentCleanersSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment cleaners", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cleanerID uuid.UUID
		if err := rows.Scan(&cleanerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cleaner id", err)
		}
		snap.CleanerIDs = append(snap.CleanerIDs, cleanerID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment cleaners", err)
	}

	return snap, nil
}

func (r *CommandReads) scanAppointment(ctx context.Context, sql string, args ...any) (*shared.AppointmentSnapshot, error) {
	row := r.dbtx.QueryRow(ctx, sql, args...)

	var (
		snap       shared.AppointmentSnapshot
		towelItems []byte
	)
	err := row.Scan(
		&snap.ID, &snap.HomeID, &snap.HomeownerID, &snap.Date, &snap.TimeWindow,
		&snap.Linens.Sheets, &snap.Linens.Towels, &towelItems,
		&snap.PriceCents, &snap.Completed,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	if len(towelItems) > 0 {
		if err := json.Unmarshal(towelItems, &snap.Linens.TowelItems); err != nil {
			return nil, infra.WrapRepoErr("failed to decode towel items", err)
		}
	}
	return &snap, nil
}

const homeByIDSQL = `
SELECT id, owner_id, num_beds, bath_halves FROM homes WHERE id = $1`

func (r *CommandReads) HomeByID(ctx context.Context, id uuid.UUID) (*shared.HomeSnapshot, error) {
	row := r.dbtx.QueryRow(ctx, homeByIDSQL, id)

	var (
		snap       shared.HomeSnapshot
		beds       int32
		bathHalves int32
	)
	if err := row.Scan(&snap.ID, &snap.OwnerID, &beds, &bathHalves); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("home not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find home", err)
	}
	snap.Beds = pricing.BedCount(beds)
	snap.Baths = pricing.BathCount(bathHalves)
	return &snap, nil
}

const userByIDSQL = `
SELECT id, role, is_active FROM users WHERE id = $1`

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row := r.dbtx.QueryRow(ctx, userByIDSQL, id)

	var (
		snap shared.UserSnapshot
		role string
	)
	if err := row.Scan(&snap.ID, &role, &snap.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	snap.Role = user.Role(role)
	return &snap, nil
}

const activePricingConfigSQL = `
SELECT version, config FROM pricing_configs WHERE active ORDER BY version DESC LIMIT 1`

const pricingConfigByVersionSQL = `
SELECT version, config FROM pricing_configs WHERE version = $1`

func (r *CommandReads) ActivePricingConfig(ctx context.Context) (*shared.PricingConfigSnapshot, error) {
	return r.scanPricingConfig(ctx, activePricingConfigSQL)
}

// PricingConfigByVersion loads a historical config so prices computed under
// it can be reproduced after newer versions activate.
func (r *CommandReads) PricingConfigByVersion(ctx context.Context, version int32) (*shared.PricingConfigSnapshot, error) {
	return r.scanPricingConfig(ctx, pricingConfigByVersionSQL, version)
}

func (r *CommandReads) scanPricingConfig(ctx context.Context, sql string, args ...any) (*shared.PricingConfigSnapshot, error) {
	row := r.dbtx.QueryRow(ctx, sql, args...)

	var (
		snap shared.PricingConfigSnapshot
		raw  []byte
	)
	if err := row.Scan(&snap.Version, &raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing config", err)
	}
	if err := json.Unmarshal(raw, &snap.Config); err != nil {
		return nil, infra.WrapRepoErr("failed to decode pricing config", err)
	}
	return &snap, nil
}

const futureAppointmentsSQL = `
SELECT a.id, a.home_id, h.owner_id, a.date, a.time_window,
       a.linen_sheets, a.linen_towels, a.towel_items,
       a.price_cents, a.completed
FROM appointments a
JOIN homes h ON h.id = a.home_id
WHERE a.home_id = $1
  AND a.date >= $2
  AND NOT a.completed
  AND a.cancelled_at IS NULL
ORDER BY a.date`

// FutureAppointmentsForHome lists the not-yet-completed appointments whose
// prices must be brought in line after the home's size of record changes.
func (r *CommandReads) FutureAppointmentsForHome(ctx context.Context, homeID uuid.UUID, from time.Time) ([]*shared.AppointmentSnapshot, error) {
	rows, err := r.dbtx.Query(ctx, futureAppointmentsSQL, homeID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list future appointments", err)
	}
	defer rows.Close()

	var snaps []*shared.AppointmentSnapshot
	for rows.Next() {
		var (
			snap       shared.AppointmentSnapshot
			towelItems []byte
		)
		err := rows.Scan(
			&snap.ID, &snap.HomeID, &snap.HomeownerID, &snap.Date, &snap.TimeWindow,
			&snap.Linens.Sheets, &snap.Linens.Towels, &towelItems,
			&snap.PriceCents, &snap.Completed,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		if len(towelItems) > 0 {
			if err := json.Unmarshal(towelItems, &snap.Linens.TowelItems); err != nil {
				return nil, infra.WrapRepoErr("failed to decode towel items", err)
			}
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return snaps, nil
}
