package pricing

import "errors"

var (
	ErrNegativeFee       = errors.New("fee values must be non-negative")
	ErrInvalidPercentage = errors.New("percentage must be in (0, 1]")
)

// Config drives every price computation. It is versioned and externally
// loaded; logic never hard-codes a fee. The version in effect is stamped
// onto each adjustment request at creation so a later config change cannot
// retroactively alter an already-computed price.
type Config struct {
	BasePriceCents       int64              `json:"base_price_cents"`
	ExtraBedBathFeeCents int64              `json:"extra_bed_bath_fee_cents"`
	HalfBathFeeCents     int64              `json:"half_bath_fee_cents"`
	Linens               LinenFees          `json:"linens"`
	TimeWindows          map[string]int64   `json:"time_windows"`
	LastMinute           LastMinuteConfig   `json:"last_minute"`
	Cancellation         CancellationConfig `json:"cancellation"`
	Platform             PlatformConfig     `json:"platform"`
}

type LinenFees struct {
	SheetFeePerBedCents int64 `json:"sheet_fee_per_bed_cents"`
	TowelFeeCents       int64 `json:"towel_fee_cents"`
	FaceClothFeeCents   int64 `json:"face_cloth_fee_cents"`
}

type LastMinuteConfig struct {
	FeeCents       int64 `json:"fee_cents"`
	ThresholdHours int   `json:"threshold_hours"`
}

type CancellationConfig struct {
	FeeCents             int64   `json:"fee_cents"`
	WindowDays           int     `json:"window_days"`
	HomeownerPenaltyDays int     `json:"homeowner_penalty_days"`
	CleanerPenaltyDays   int     `json:"cleaner_penalty_days"`
	RefundPercentage     float64 `json:"refund_percentage"`
}

type PlatformConfig struct {
	FeePercent float64 `json:"fee_percent"`
}

func (c Config) Validate() error {
	fees := []int64{
		c.BasePriceCents,
		c.ExtraBedBathFeeCents,
		c.HalfBathFeeCents,
		c.Linens.SheetFeePerBedCents,
		c.Linens.TowelFeeCents,
		c.Linens.FaceClothFeeCents,
		c.LastMinute.FeeCents,
		c.Cancellation.FeeCents,
	}
	for _, f := range fees {
		if f < 0 {
			return ErrNegativeFee
		}
	}
	for _, surcharge := range c.TimeWindows {
		if surcharge < 0 {
			return ErrNegativeFee
		}
	}
	if c.Cancellation.RefundPercentage <= 0 || c.Cancellation.RefundPercentage > 1 {
		return ErrInvalidPercentage
	}
	if c.Platform.FeePercent <= 0 || c.Platform.FeePercent > 1 {
		return ErrInvalidPercentage
	}
	return nil
}
