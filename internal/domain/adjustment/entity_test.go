//go:build unit

package adjustment_test

import (
	"testing"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newPendingRequest(t *testing.T) *adjustment.Request {
	t.Helper()
	req, err := builder.NewAdjustmentBuilder().WithCreatedAt(baseTime).BuildDomain()
	require.NoError(t, err)
	return req
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual := newPendingRequest(t)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, adjustment.StatusPendingHomeowner, actual.Status())
		assert.Equal(t, adjustment.ChargePending, actual.ChargeStatus())
		assert.Equal(t, baseTime.Add(adjustment.ReviewWindow), actual.ExpiresAt())
		assert.Equal(t, int64(7500), actual.PriceDifferenceCents())
		assert.Nil(t, actual.FinalBeds())
		assert.Nil(t, actual.ResolverID())
	})

	t.Run("reported size equal to the record is rejected", func(t *testing.T) {
		_, err := builder.NewAdjustmentBuilder().
			WithOriginalSize(3, 5).
			WithReportedSize("3", "2.5").
			BuildDomain()
		assert.ErrorIs(t, err, adjustment.ErrSameSizeReported)
	})

	t.Run("smaller reported size is allowed", func(t *testing.T) {
		req, err := builder.NewAdjustmentBuilder().
			WithOriginalSize(4, 6).
			WithReportedSize("3", "2").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusPendingHomeowner, req.Status())
	})
}

func TestExpiry(t *testing.T) {
	req := newPendingRequest(t)

	t.Run("not expired before the window lapses", func(t *testing.T) {
		assert.False(t, req.HasExpired(baseTime.Add(adjustment.ReviewWindow-time.Minute)))
	})

	t.Run("exactly at the deadline is not yet expired", func(t *testing.T) {
		assert.False(t, req.HasExpired(baseTime.Add(adjustment.ReviewWindow)))
	})

	t.Run("expired after the deadline", func(t *testing.T) {
		assert.True(t, req.HasExpired(baseTime.Add(adjustment.ReviewWindow+time.Second)))
	})
}

func TestApproveByHomeowner(t *testing.T) {
	t.Run("sets final size to the reported size", func(t *testing.T) {
		req := newPendingRequest(t)
		now := baseTime.Add(time.Hour)

		require.NoError(t, req.ApproveByHomeowner(now))

		assert.Equal(t, adjustment.StatusApproved, req.Status())
		require.NotNil(t, req.FinalBeds())
		assert.Equal(t, req.ReportedBeds(), *req.FinalBeds())
		require.NotNil(t, req.FinalBaths())
		assert.Equal(t, req.ReportedBaths(), *req.FinalBaths())
		assert.Equal(t, adjustment.ChargePending, req.ChargeStatus())
		assert.Equal(t, now, req.UpdatedAt())
	})

	t.Run("charge waived when the price went down", func(t *testing.T) {
		b := builder.NewAdjustmentBuilder().
			WithOriginalSize(4, 6).
			WithReportedSize("3", "2")
		b.OriginalPriceCents = 30000
		b.NewPriceCents = 22500
		req, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, req.ApproveByHomeowner(baseTime))
		assert.Equal(t, adjustment.ChargeWaived, req.ChargeStatus())
	})

	t.Run("only a pending request can be approved", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.ApproveByHomeowner(baseTime))

		assert.ErrorIs(t, req.ApproveByHomeowner(baseTime), adjustment.ErrNotPendingHomeowner)
	})
}

func TestDispute(t *testing.T) {
	t.Run("hands the request to escalation", func(t *testing.T) {
		req := newPendingRequest(t)

		require.NoError(t, req.Dispute("We only have two bedrooms", baseTime))

		assert.Equal(t, adjustment.StatusPendingOwner, req.Status())
		require.NotNil(t, req.HomeownerResponse())
		assert.Equal(t, "We only have two bedrooms", *req.HomeownerResponse())
	})

	t.Run("cannot dispute twice", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Dispute("no", baseTime))

		assert.ErrorIs(t, req.Dispute("still no", baseTime), adjustment.ErrNotPendingHomeowner)
	})

	t.Run("cannot dispute an approved request", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.ApproveByHomeowner(baseTime))

		assert.ErrorIs(t, req.Dispute("changed my mind", baseTime), adjustment.ErrNotPendingHomeowner)
	})
}

func TestResolveApprove(t *testing.T) {
	resolverID := uuid.New()

	t.Run("overrules a dispute with corrected values", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Dispute("disagree", baseTime))

		finalBeds := pricing.BedCount(3)
		finalBaths := pricing.BathCount(4) // resolver corrected 2.5 down to 2
		err := req.ResolveApprove(resolverID, finalBeds, finalBaths, 25000, "Listing photos show three bedrooms", baseTime.Add(2*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, adjustment.StatusOwnerApproved, req.Status())
		require.NotNil(t, req.ResolverID())
		assert.Equal(t, resolverID, *req.ResolverID())
		assert.Equal(t, finalBeds, *req.FinalBeds())
		assert.Equal(t, finalBaths, *req.FinalBaths())
		assert.Equal(t, int64(25000), req.NewPriceCents())
		assert.Equal(t, int64(5000), req.PriceDifferenceCents())
		assert.Equal(t, adjustment.ChargePending, req.ChargeStatus())
		require.NotNil(t, req.OwnerNote())
		assert.Equal(t, "Listing photos show three bedrooms", *req.OwnerNote())
	})

	t.Run("an unanswered request is resolvable once expired", func(t *testing.T) {
		req := newPendingRequest(t)
		afterExpiry := baseTime.Add(adjustment.ReviewWindow + time.Hour)

		err := req.ResolveApprove(resolverID, req.ReportedBeds(), req.ReportedBaths(), 27500, "No homeowner response", afterExpiry)
		require.NoError(t, err)
		assert.Equal(t, adjustment.StatusOwnerApproved, req.Status())
	})

	t.Run("an unanswered request inside the window is not resolvable", func(t *testing.T) {
		req := newPendingRequest(t)

		err := req.ResolveApprove(resolverID, req.ReportedBeds(), req.ReportedBaths(), 27500, "too soon", baseTime.Add(time.Hour))
		assert.ErrorIs(t, err, adjustment.ErrNotEligibleForOwner)
	})

	t.Run("a resolved request cannot be resolved again", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Dispute("disagree", baseTime))
		require.NoError(t, req.ResolveApprove(resolverID, req.ReportedBeds(), req.ReportedBaths(), 27500, "done", baseTime))

		err := req.ResolveApprove(resolverID, req.ReportedBeds(), req.ReportedBaths(), 27500, "again", baseTime)
		assert.ErrorIs(t, err, adjustment.ErrNotEligibleForOwner)
	})

	t.Run("charge waived when the corrected price does not increase", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Dispute("disagree", baseTime))

		err := req.ResolveApprove(resolverID, req.OriginalBeds(), req.OriginalBaths(), req.OriginalPriceCents(), "record stands, minor note", baseTime)
		require.NoError(t, err)
		assert.Equal(t, adjustment.ChargeWaived, req.ChargeStatus())
	})
}

func TestResolveDeny(t *testing.T) {
	resolverID := uuid.New()

	t.Run("rejects the claim and never charges", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.Dispute("disagree", baseTime))

		require.NoError(t, req.ResolveDeny(resolverID, "Photos do not support the claim", baseTime.Add(time.Hour)))

		assert.Equal(t, adjustment.StatusOwnerDenied, req.Status())
		assert.Equal(t, adjustment.ChargeWaived, req.ChargeStatus())
		assert.Nil(t, req.FinalBeds())
		require.NotNil(t, req.OwnerNote())
	})

	t.Run("not eligible before dispute or expiry", func(t *testing.T) {
		req := newPendingRequest(t)
		assert.ErrorIs(t, req.ResolveDeny(resolverID, "too soon", baseTime), adjustment.ErrNotEligibleForOwner)
	})
}

func TestMarkChargeOutcome(t *testing.T) {
	t.Run("success and failure never touch the status", func(t *testing.T) {
		req := newPendingRequest(t)
		require.NoError(t, req.ApproveByHomeowner(baseTime))
		require.Equal(t, adjustment.ChargePending, req.ChargeStatus())

		req.MarkChargeOutcome(false, baseTime)
		assert.Equal(t, adjustment.ChargeFailed, req.ChargeStatus())
		assert.Equal(t, adjustment.StatusApproved, req.Status())

		req.MarkChargeOutcome(true, baseTime)
		assert.Equal(t, adjustment.ChargeSucceeded, req.ChargeStatus())
		assert.Equal(t, adjustment.StatusApproved, req.Status())
	})
}

func TestStatus(t *testing.T) {
	t.Run("resolved statuses", func(t *testing.T) {
		assert.True(t, adjustment.StatusApproved.IsResolved())
		assert.True(t, adjustment.StatusOwnerApproved.IsResolved())
		assert.True(t, adjustment.StatusOwnerDenied.IsResolved())
		assert.False(t, adjustment.StatusPendingHomeowner.IsResolved())
		assert.False(t, adjustment.StatusPendingOwner.IsResolved())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, adjustment.StatusPendingOwner.IsValid())
		assert.False(t, adjustment.Status("cancelled").IsValid())
	})
}
