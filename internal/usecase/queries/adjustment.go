package queries

import (
	"context"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/user"
	"homeshine/internal/infra"
	"homeshine/internal/pkg/clock"
	"homeshine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAdjustmentNotFound = errs.New("adjustment request not found")
	ErrHomeNotFound       = errs.New("home not found")
	ErrAccessDenied       = errs.New("access denied")
)

// Actor identifies the authenticated caller for read-side authorization.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type AdjustmentQueries interface {
	// GetByID returns the request, redacted to what the actor may see.
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*AdjustmentView, error)
	// ListPending returns the homeowner's own requests awaiting their
	// response, or, for escalation authority, everything awaiting a ruling.
	ListPending(ctx context.Context, actor Actor) ([]*AdjustmentListItem, error)
	HomeHistory(ctx context.Context, actor Actor, homeID uuid.UUID) ([]*AdjustmentListItem, error)
}

type AdjustmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdjustmentView, error)
	ListPendingForHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*AdjustmentListItem, error)
	// ListAwaitingResolution returns disputed requests plus unanswered ones
	// whose review window has lapsed as of now.
	ListAwaitingResolution(ctx context.Context, now time.Time) ([]*AdjustmentListItem, error)
	ListByHome(ctx context.Context, homeID uuid.UUID) ([]*AdjustmentListItem, error)
	HomeOwnerID(ctx context.Context, homeID uuid.UUID) (uuid.UUID, error)
}

type adjustmentQueriesImpl struct {
	readStore AdjustmentReadStore
	clock     clock.Clock
}

func NewAdjustmentQueries(readStore AdjustmentReadStore, clk clock.Clock) AdjustmentQueries {
	return &adjustmentQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *adjustmentQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*AdjustmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdjustmentNotFound
		}
		return nil, err
	}

	authority := actor.Role.HasEscalationAuthority()
	if !authority && actor.ID != view.HomeownerID && actor.ID != view.CleanerID {
		return nil, ErrAccessDenied
	}

	view.Expired = q.markExpired(view.Status, view.ExpiresAt)
	if !authority {
		redactForParty(view)
	}
	return view, nil
}

func (q *adjustmentQueriesImpl) ListPending(ctx context.Context, actor Actor) ([]*AdjustmentListItem, error) {
	now := q.clock.Now()

	var (
		items []*AdjustmentListItem
		err   error
	)
	switch {
	case actor.Role.HasEscalationAuthority():
		items, err = q.readStore.ListAwaitingResolution(ctx, now)
	case actor.Role == user.RoleHomeowner:
		items, err = q.readStore.ListPendingForHomeowner(ctx, actor.ID)
	default:
		return nil, ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Expired = q.markExpired(item.Status, item.ExpiresAt)
	}
	return items, nil
}

func (q *adjustmentQueriesImpl) HomeHistory(ctx context.Context, actor Actor, homeID uuid.UUID) ([]*AdjustmentListItem, error) {
	ownerID, err := q.readStore.HomeOwnerID(ctx, homeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	if !actor.Role.HasEscalationAuthority() && actor.ID != ownerID {
		return nil, ErrAccessDenied
	}

	items, err := q.readStore.ListByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Expired = q.markExpired(item.Status, item.ExpiresAt)
	}
	return items, nil
}

// Expiry is a property of an unanswered request, not a stored status.
func (q *adjustmentQueriesImpl) markExpired(status string, expiresAt time.Time) bool {
	return status == adjustment.StatusPendingHomeowner.String() && q.clock.Now().After(expiresAt)
}

// Evidence photos and trust tracking stay internal to escalation review.
func redactForParty(view *AdjustmentView) {
	view.Photos = nil
	view.Trust = nil
	view.OwnerNote = nil
}
