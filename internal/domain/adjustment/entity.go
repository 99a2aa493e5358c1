package adjustment

import (
	"errors"
	"time"

	"homeshine/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNotPendingHomeowner = errors.New("request is not awaiting the homeowner")
	ErrNotEligibleForOwner = errors.New("request is not awaiting escalation resolution")
	ErrAlreadyResolved     = errors.New("request is already resolved")
	ErrSameSizeReported    = errors.New("reported size matches the record")
)

// ReviewWindow is how long the homeowner has before the request becomes
// directly resolvable by an escalation authority.
const ReviewWindow = 24 * time.Hour

// Request is a cleaner's claim that a home's size of record is wrong.
// Requests are never deleted; resolved ones remain as the audit trail.
type Request struct {
	id                   uuid.UUID
	appointmentID        uuid.UUID
	homeID               uuid.UUID
	cleanerID            uuid.UUID
	homeownerID          uuid.UUID
	originalBeds         pricing.BedCount
	originalBaths        pricing.BathCount
	reportedBeds         pricing.BedCount
	reportedBaths        pricing.BathCount
	originalPriceCents   int64
	newPriceCents        int64
	status               Status
	cleanerNote          string
	homeownerResponse    *string
	ownerNote            *string
	resolverID           *uuid.UUID
	finalBeds            *pricing.BedCount
	finalBaths           *pricing.BathCount
	pricingConfigVersion int32
	chargeStatus         ChargeStatus
	expiresAt            time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

type NewRequestParams struct {
	AppointmentID        uuid.UUID
	HomeID               uuid.UUID
	CleanerID            uuid.UUID
	HomeownerID          uuid.UUID
	OriginalBeds         pricing.BedCount
	OriginalBaths        pricing.BathCount
	ReportedBeds         pricing.BedCount
	ReportedBaths        pricing.BathCount
	OriginalPriceCents   int64
	NewPriceCents        int64
	CleanerNote          string
	PricingConfigVersion int32
}

func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	if p.ReportedBeds == p.OriginalBeds && p.ReportedBaths == p.OriginalBaths {
		return nil, ErrSameSizeReported
	}
	return &Request{
		id:                   uuid.New(),
		appointmentID:        p.AppointmentID,
		homeID:               p.HomeID,
		cleanerID:            p.CleanerID,
		homeownerID:          p.HomeownerID,
		originalBeds:         p.OriginalBeds,
		originalBaths:        p.OriginalBaths,
		reportedBeds:         p.ReportedBeds,
		reportedBaths:        p.ReportedBaths,
		originalPriceCents:   p.OriginalPriceCents,
		newPriceCents:        p.NewPriceCents,
		status:               StatusPendingHomeowner,
		cleanerNote:          p.CleanerNote,
		pricingConfigVersion: p.PricingConfigVersion,
		chargeStatus:         ChargePending,
		expiresAt:            now.Add(ReviewWindow),
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

type ReconstructParams struct {
	ID                   uuid.UUID
	AppointmentID        uuid.UUID
	HomeID               uuid.UUID
	CleanerID            uuid.UUID
	HomeownerID          uuid.UUID
	OriginalBeds         pricing.BedCount
	OriginalBaths        pricing.BathCount
	ReportedBeds         pricing.BedCount
	ReportedBaths        pricing.BathCount
	OriginalPriceCents   int64
	NewPriceCents        int64
	Status               Status
	CleanerNote          string
	HomeownerResponse    *string
	OwnerNote            *string
	ResolverID           *uuid.UUID
	FinalBeds            *pricing.BedCount
	FinalBaths           *pricing.BathCount
	PricingConfigVersion int32
	ChargeStatus         ChargeStatus
	ExpiresAt            time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func Reconstruct(p ReconstructParams) *Request {
	return &Request{
		id:                   p.ID,
		appointmentID:        p.AppointmentID,
		homeID:               p.HomeID,
		cleanerID:            p.CleanerID,
		homeownerID:          p.HomeownerID,
		originalBeds:         p.OriginalBeds,
		originalBaths:        p.OriginalBaths,
		reportedBeds:         p.ReportedBeds,
		reportedBaths:        p.ReportedBaths,
		originalPriceCents:   p.OriginalPriceCents,
		newPriceCents:        p.NewPriceCents,
		status:               p.Status,
		cleanerNote:          p.CleanerNote,
		homeownerResponse:    p.HomeownerResponse,
		ownerNote:            p.OwnerNote,
		resolverID:           p.ResolverID,
		finalBeds:            p.FinalBeds,
		finalBaths:           p.FinalBaths,
		pricingConfigVersion: p.PricingConfigVersion,
		chargeStatus:         p.ChargeStatus,
		expiresAt:            p.ExpiresAt,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}
}

// HasExpired is a passive, time-based check evaluated at resolve time;
// nothing records the moment of expiry.
func (r *Request) HasExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// EligibleForOwnerResolution holds once the homeowner has disputed the
// claim, or once the review window lapsed without a homeowner action.
func (r *Request) EligibleForOwnerResolution(now time.Time) bool {
	if r.status == StatusPendingOwner {
		return true
	}
	return r.status == StatusPendingHomeowner && r.HasExpired(now)
}

// ApproveByHomeowner accepts the cleaner's reported size as final.
func (r *Request) ApproveByHomeowner(now time.Time) error {
	if r.status != StatusPendingHomeowner {
		return ErrNotPendingHomeowner
	}
	r.status = StatusApproved
	r.finalBeds = &r.reportedBeds
	r.finalBaths = &r.reportedBaths
	r.chargeStatus = chargeStatusFor(r.PriceDifferenceCents())
	r.updatedAt = now
	return nil
}

// Dispute records the homeowner's rejection and hands the request to the
// escalation authority.
func (r *Request) Dispute(reason string, now time.Time) error {
	if r.status != StatusPendingHomeowner {
		return ErrNotPendingHomeowner
	}
	r.status = StatusPendingOwner
	r.homeownerResponse = &reason
	r.updatedAt = now
	return nil
}

// ResolveApprove overrules the homeowner's dispute. The resolver may accept
// the reported size or supply corrected values; newPriceCents must have been
// recomputed for the final size by the caller.
func (r *Request) ResolveApprove(resolverID uuid.UUID, finalBeds pricing.BedCount, finalBaths pricing.BathCount, newPriceCents int64, note string, now time.Time) error {
	if !r.EligibleForOwnerResolution(now) {
		return ErrNotEligibleForOwner
	}
	r.status = StatusOwnerApproved
	r.resolverID = &resolverID
	r.finalBeds = &finalBeds
	r.finalBaths = &finalBaths
	r.newPriceCents = newPriceCents
	r.ownerNote = &note
	r.chargeStatus = chargeStatusFor(r.PriceDifferenceCents())
	r.updatedAt = now
	return nil
}

// ResolveDeny rejects the cleaner's claim; the home record stays untouched
// and no charge is ever attempted.
func (r *Request) ResolveDeny(resolverID uuid.UUID, note string, now time.Time) error {
	if !r.EligibleForOwnerResolution(now) {
		return ErrNotEligibleForOwner
	}
	r.status = StatusOwnerDenied
	r.resolverID = &resolverID
	r.ownerNote = &note
	r.chargeStatus = ChargeWaived
	r.updatedAt = now
	return nil
}

// MarkChargeOutcome records the single synchronous gateway attempt made
// after the resolution committed. It never changes the request status.
func (r *Request) MarkChargeOutcome(succeeded bool, now time.Time) {
	if succeeded {
		r.chargeStatus = ChargeSucceeded
	} else {
		r.chargeStatus = ChargeFailed
	}
	r.updatedAt = now
}

func chargeStatusFor(priceDifferenceCents int64) ChargeStatus {
	if priceDifferenceCents <= 0 {
		return ChargeWaived
	}
	return ChargePending
}

func (r *Request) ID() uuid.UUID                    { return r.id }
func (r *Request) AppointmentID() uuid.UUID         { return r.appointmentID }
func (r *Request) HomeID() uuid.UUID                { return r.homeID }
func (r *Request) CleanerID() uuid.UUID             { return r.cleanerID }
func (r *Request) HomeownerID() uuid.UUID           { return r.homeownerID }
func (r *Request) OriginalBeds() pricing.BedCount   { return r.originalBeds }
func (r *Request) OriginalBaths() pricing.BathCount { return r.originalBaths }
func (r *Request) ReportedBeds() pricing.BedCount   { return r.reportedBeds }
func (r *Request) ReportedBaths() pricing.BathCount { return r.reportedBaths }
func (r *Request) OriginalPriceCents() int64        { return r.originalPriceCents }
func (r *Request) NewPriceCents() int64             { return r.newPriceCents }
func (r *Request) PriceDifferenceCents() int64      { return r.newPriceCents - r.originalPriceCents }
func (r *Request) Status() Status                   { return r.status }
func (r *Request) CleanerNote() string              { return r.cleanerNote }
func (r *Request) HomeownerResponse() *string       { return r.homeownerResponse }
func (r *Request) OwnerNote() *string               { return r.ownerNote }
func (r *Request) ResolverID() *uuid.UUID           { return r.resolverID }
func (r *Request) FinalBeds() *pricing.BedCount     { return r.finalBeds }
func (r *Request) FinalBaths() *pricing.BathCount   { return r.finalBaths }
func (r *Request) PricingConfigVersion() int32      { return r.pricingConfigVersion }
func (r *Request) ChargeStatus() ChargeStatus       { return r.chargeStatus }
func (r *Request) ExpiresAt() time.Time             { return r.expiresAt }
func (r *Request) CreatedAt() time.Time             { return r.createdAt }
func (r *Request) UpdatedAt() time.Time             { return r.updatedAt }
