package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/internal/domain/user"
	reqdto "homeshine/internal/handler/dto/request"
	"homeshine/internal/infra"
	"homeshine/internal/infra/db"
	"homeshine/internal/pkg/clock"
	"homeshine/internal/pkg/errs"
	"homeshine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound         = errs.New("appointment not found")
	ErrAdjustmentNotFound          = errs.New("adjustment request not found")
	ErrDuplicateAdjustment         = errs.New("an unresolved adjustment request already exists for this appointment")
	ErrInvalidRequestStatus        = errs.New("request status does not allow this operation")
	ErrNotAssignedCleaner          = errs.New("caller is not assigned to this appointment")
	ErrNotHomeowner                = errs.New("caller is not the homeowner of this request")
	ErrEscalationAuthorityRequired = errs.New("escalation authority required")
	ErrPricingConfigNotFound       = errs.New("pricing config not found")
	ErrDomainValidation            = errs.New("domain validation error")
	ErrDatabaseOperationFailed     = errs.New("database operation failed")
)

type CreateAdjustmentResult struct {
	RequestID            uuid.UUID
	Status               adjustment.Status
	OriginalPriceCents   int64
	NewPriceCents        int64
	PriceDifferenceCents int64
	ExpiresAt            time.Time
}

type RespondResult struct {
	Status       adjustment.Status
	ChargeStatus adjustment.ChargeStatus
}

type ResolveResult struct {
	Status       adjustment.Status
	FinalBeds    pricing.BedCount
	FinalBaths   pricing.BathCount
	ChargeStatus adjustment.ChargeStatus
}

type AdjustmentCommands interface {
	CreateRequest(ctx context.Context, cleanerID uuid.UUID, req reqdto.CreateAdjustmentRequest) (*CreateAdjustmentResult, error)
	HomeownerRespond(ctx context.Context, actorID uuid.UUID, requestID uuid.UUID, req reqdto.HomeownerResponseRequest) (*RespondResult, error)
	OwnerResolve(ctx context.Context, resolverID uuid.UUID, role user.Role, requestID uuid.UUID, req reqdto.OwnerResolveRequest) (*ResolveResult, error)
}

type adjustmentCommandsImpl struct {
	uow            shared.UnitOfWork
	adjustmentRepo shared.AdjustmentRepository
	gateway        PaymentGateway
	reconciler     *LedgerReconciler
	clock          clock.Clock
}

func NewAdjustmentCommands(
	uow shared.UnitOfWork,
	adjustmentRepo shared.AdjustmentRepository,
	gateway PaymentGateway,
	reconciler *LedgerReconciler,
	clk clock.Clock,
) AdjustmentCommands {
	return &adjustmentCommandsImpl{
		uow:            uow,
		adjustmentRepo: adjustmentRepo,
		gateway:        gateway,
		reconciler:     reconciler,
		clock:          clk,
	}
}

// CreateRequest opens a dispute over a home's size of record. The evidence
// set is validated before anything is read or written; the triggering
// appointment's price is not touched here, only the contested value is
// computed and stored for review.
func (u *adjustmentCommandsImpl) CreateRequest(ctx context.Context, cleanerID uuid.UUID, req reqdto.CreateAdjustmentRequest) (*CreateAdjustmentResult, error) {
	reportedBeds, err := pricing.ParseBedCount(req.ReportedBeds)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	reportedBaths, err := pricing.ParseBathCount(req.ReportedBaths)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	photos := make([]adjustment.EvidencePhoto, 0, len(req.Photos))
	for _, p := range req.Photos {
		photos = append(photos, adjustment.NewEvidencePhoto(adjustment.RoomType(p.RoomType), p.RoomNumber, []byte(p.Payload)))
	}
	if err := adjustment.ValidateEvidence(reportedBeds, reportedBaths, photos); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	reads := u.uow.CommandReads()

	appt, err := reads.AppointmentByID(ctx, req.AppointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !appt.AssignedTo(cleanerID) {
		return nil, ErrNotAssignedCleaner
	}

	home, err := reads.HomeByID(ctx, appt.HomeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cfg, err := reads.ActivePricingConfig(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPricingConfigNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newPrice := pricing.Quote(cfg.Config, reportedBeds, reportedBaths, appt.Linens, appt.TimeWindow)

	request, err := adjustment.NewRequest(adjustment.NewRequestParams{
		AppointmentID:        appt.ID,
		HomeID:               home.ID,
		CleanerID:            cleanerID,
		HomeownerID:          appt.HomeownerID,
		OriginalBeds:         home.Beds,
		OriginalBaths:        home.Baths,
		ReportedBeds:         reportedBeds,
		ReportedBaths:        reportedBaths,
		OriginalPriceCents:   appt.PriceCents,
		NewPriceCents:        newPrice,
		CleanerNote:          req.Note,
		PricingConfigVersion: cfg.Version,
	}, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Adjustments().Create(ctx, tx.DB(), request); err != nil {
			return err
		}
		if err := tx.Evidence().CreateBatch(ctx, tx.DB(), request.ID(), photos); err != nil {
			return err
		}
		return u.notify(ctx, tx, appt.HomeownerID, NotifyRequestCreated, request)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateAdjustment
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateAdjustmentResult{
		RequestID:            request.ID(),
		Status:               request.Status(),
		OriginalPriceCents:   request.OriginalPriceCents(),
		NewPriceCents:        request.NewPriceCents(),
		PriceDifferenceCents: request.PriceDifferenceCents(),
		ExpiresAt:            request.ExpiresAt(),
	}, nil
}

// HomeownerRespond accepts or disputes the cleaner's claim. Approval writes
// the reported size onto the home and reprices the triggering appointment
// in the same transaction; the rest of the ledger and the charge attempt
// follow after commit.
func (u *adjustmentCommandsImpl) HomeownerRespond(ctx context.Context, actorID uuid.UUID, requestID uuid.UUID, req reqdto.HomeownerResponseRequest) (*RespondResult, error) {
	approve := req.Approve != nil && *req.Approve

	var request *adjustment.Request
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		request, err = tx.Adjustments().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return err
		}
		if request.HomeownerID() != actorID {
			return ErrNotHomeowner
		}

		now := u.clock.Now()
		if approve {
			if err := request.ApproveByHomeowner(now); err != nil {
				return errs.Mark(err, ErrInvalidRequestStatus)
			}
			if err := u.applyApproval(ctx, tx, request); err != nil {
				return err
			}
			return u.notify(ctx, tx, request.CleanerID(), NotifyRequestApproved, request)
		}

		if err := request.Dispute(req.Reason, now); err != nil {
			return errs.Mark(err, ErrInvalidRequestStatus)
		}
		if err := tx.Adjustments().Update(ctx, tx.DB(), request); err != nil {
			return err
		}
		return u.notify(ctx, tx, request.CleanerID(), NotifyRequestDisputed, request)
	})
	if err != nil {
		return nil, u.classify(err)
	}

	if approve {
		u.finalizeApproval(ctx, request)
	}

	return &RespondResult{
		Status:       request.Status(),
		ChargeStatus: request.ChargeStatus(),
	}, nil
}

// OwnerResolve is the final, binding ruling on a disputed or expired
// request. An adverse ruling marks the losing party's record; approval
// accepts the reported size or resolver-supplied override values.
func (u *adjustmentCommandsImpl) OwnerResolve(ctx context.Context, resolverID uuid.UUID, role user.Role, requestID uuid.UUID, req reqdto.OwnerResolveRequest) (*ResolveResult, error) {
	if !role.HasEscalationAuthority() {
		return nil, ErrEscalationAuthorityRequired
	}
	approve := req.Approve != nil && *req.Approve

	var request *adjustment.Request
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		request, err = tx.Adjustments().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		wasDisputed := request.Status() == adjustment.StatusPendingOwner

		if !approve {
			if err := request.ResolveDeny(resolverID, req.OwnerNote, now); err != nil {
				return errs.Mark(err, ErrInvalidRequestStatus)
			}
			if err := tx.Adjustments().Update(ctx, tx.DB(), request); err != nil {
				return err
			}
			if err := u.recordCleanerDiscrepancy(ctx, tx, request, resolverID); err != nil {
				return err
			}
			return u.notify(ctx, tx, request.CleanerID(), NotifyRequestResolved, request)
		}

		finalBeds, finalBaths, err := resolveFinalSize(request, req)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		cfg, err := tx.Reads().PricingConfigByVersion(ctx, request.PricingConfigVersion())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPricingConfigNotFound
			}
			return err
		}
		appt, err := tx.Reads().AppointmentByID(ctx, request.AppointmentID())
		if err != nil {
			return err
		}
		newPrice := pricing.Quote(cfg.Config, finalBeds, finalBaths, appt.Linens, appt.TimeWindow)

		if err := request.ResolveApprove(resolverID, finalBeds, finalBaths, newPrice, req.OwnerNote, now); err != nil {
			return errs.Mark(err, ErrInvalidRequestStatus)
		}
		if err := u.applyApproval(ctx, tx, request); err != nil {
			return err
		}
		if wasDisputed {
			if err := u.recordHomeownerDiscrepancy(ctx, tx, request, resolverID); err != nil {
				return err
			}
		}
		if err := u.notify(ctx, tx, request.CleanerID(), NotifyRequestResolved, request); err != nil {
			return err
		}
		return u.notify(ctx, tx, request.HomeownerID(), NotifyRequestResolved, request)
	})
	if err != nil {
		return nil, u.classify(err)
	}

	if approve {
		u.finalizeApproval(ctx, request)
	}

	result := &ResolveResult{
		Status:       request.Status(),
		FinalBeds:    request.OriginalBeds(),
		FinalBaths:   request.OriginalBaths(),
		ChargeStatus: request.ChargeStatus(),
	}
	if b := request.FinalBeds(); b != nil {
		result.FinalBeds = *b
	}
	if b := request.FinalBaths(); b != nil {
		result.FinalBaths = *b
	}
	return result, nil
}

// applyApproval performs the in-transaction part of an approved resolution:
// the home's size of record and the triggering appointment's price move
// together with the status transition or not at all.
func (u *adjustmentCommandsImpl) applyApproval(ctx context.Context, tx shared.Tx, request *adjustment.Request) error {
	finalBeds := request.FinalBeds()
	finalBaths := request.FinalBaths()

	if err := tx.Homes().UpdateSize(ctx, tx.DB(), request.HomeID(), *finalBeds, *finalBaths); err != nil {
		return err
	}
	if err := tx.Appointments().UpdatePrice(ctx, tx.DB(), request.AppointmentID(), request.NewPriceCents()); err != nil {
		return err
	}
	return tx.Adjustments().Update(ctx, tx.DB(), request)
}

// finalizeApproval runs after the resolving transaction committed: the
// remaining ledger entries are repriced best-effort and the single
// synchronous charge attempt is made. Neither can undo the resolution.
func (u *adjustmentCommandsImpl) finalizeApproval(ctx context.Context, request *adjustment.Request) {
	finalBeds := request.FinalBeds()
	finalBaths := request.FinalBaths()

	cfg, err := u.uow.CommandReads().PricingConfigByVersion(ctx, request.PricingConfigVersion())
	if err != nil {
		slog.Error("skipping ledger reconcile, pricing config unavailable",
			"request_id", request.ID(),
			"config_version", request.PricingConfigVersion(),
			"error", err.Error())
	} else {
		u.reconciler.Reconcile(ctx, request.HomeID(), request.AppointmentID(), *finalBeds, *finalBaths, cfg.Config)
	}

	u.settleCharge(ctx, request)
}

// settleCharge makes at most one gateway attempt. A failure is recorded
// for out-of-band follow-up and never surfaces as a request failure.
func (u *adjustmentCommandsImpl) settleCharge(ctx context.Context, request *adjustment.Request) {
	if request.ChargeStatus() != adjustment.ChargePending {
		return
	}

	description := fmt.Sprintf("price adjustment for appointment %s", request.AppointmentID())
	result, err := u.gateway.ChargeCustomer(ctx, request.HomeownerID(), request.PriceDifferenceCents(), description)

	succeeded := err == nil && result != nil && result.Succeeded
	if !succeeded {
		reason := "gateway declined"
		if err != nil {
			reason = err.Error()
		}
		slog.Error("adjustment charge failed",
			"request_id", request.ID(),
			"homeowner_id", request.HomeownerID(),
			"amount_cents", request.PriceDifferenceCents(),
			"error", reason)
	}
	request.MarkChargeOutcome(succeeded, u.clock.Now())

	err = u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return u.adjustmentRepo.UpdateChargeStatus(ctx, dbtx, request.ID(), request.ChargeStatus())
	})
	if err != nil {
		slog.Error("failed to record charge outcome",
			"request_id", request.ID(),
			"charge_status", request.ChargeStatus().String(),
			"error", err.Error())
	}
}

func (u *adjustmentCommandsImpl) recordCleanerDiscrepancy(ctx context.Context, tx shared.Tx, request *adjustment.Request, resolverID uuid.UUID) error {
	note := fmt.Sprintf("size claim denied on request %s: reported %d beds / %.1f baths against record of %d beds / %.1f baths",
		request.ID(),
		request.ReportedBeds().Int(), request.ReportedBaths().Float(),
		request.OriginalBeds().Int(), request.OriginalBaths().Float())

	if err := tx.Users().IncrementFalseClaimCount(ctx, tx.DB(), request.CleanerID()); err != nil {
		return err
	}
	return tx.Users().AppendAuditNote(ctx, tx.DB(), request.CleanerID(), resolverID, note)
}

func (u *adjustmentCommandsImpl) recordHomeownerDiscrepancy(ctx context.Context, tx shared.Tx, request *adjustment.Request, resolverID uuid.UUID) error {
	finalBeds := request.FinalBeds()
	finalBaths := request.FinalBaths()
	note := fmt.Sprintf("home size dispute overruled on request %s: maintained %d beds / %.1f baths, corrected to %d beds / %.1f baths",
		request.ID(),
		request.OriginalBeds().Int(), request.OriginalBaths().Float(),
		finalBeds.Int(), finalBaths.Float())

	if err := tx.Users().IncrementFalseHomeSizeCount(ctx, tx.DB(), request.HomeownerID()); err != nil {
		return err
	}
	return tx.Users().AppendAuditNote(ctx, tx.DB(), request.HomeownerID(), resolverID, note)
}

func (u *adjustmentCommandsImpl) notify(ctx context.Context, tx shared.Tx, recipientID uuid.UUID, kind string, request *adjustment.Request) error {
	payload, err := json.Marshal(map[string]any{
		"request_id":             request.ID(),
		"appointment_id":         request.AppointmentID(),
		"status":                 request.Status().String(),
		"new_price_cents":        request.NewPriceCents(),
		"price_difference_cents": request.PriceDifferenceCents(),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), recipientID, kind, payload)
}

func resolveFinalSize(request *adjustment.Request, req reqdto.OwnerResolveRequest) (pricing.BedCount, pricing.BathCount, error) {
	finalBeds := request.ReportedBeds()
	finalBaths := request.ReportedBaths()

	if req.FinalBeds != nil {
		beds, err := pricing.ParseBedCount(*req.FinalBeds)
		if err != nil {
			return 0, 0, err
		}
		finalBeds = beds
	}
	if req.FinalBaths != nil {
		baths, err := pricing.ParseBathCount(*req.FinalBaths)
		if err != nil {
			return 0, 0, err
		}
		finalBaths = baths
	}
	return finalBeds, finalBaths, nil
}

// classify maps infra-level failures to command errors; already-marked
// command errors pass through untouched.
func (u *adjustmentCommandsImpl) classify(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrAdjustmentNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateAdjustment
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	default:
		return err
	}
}
