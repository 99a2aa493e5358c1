//go:build unit

package pricing_test

import (
	"testing"

	"homeshine/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() pricing.Config {
	return pricing.Config{
		BasePriceCents:       15000,
		ExtraBedBathFeeCents: 5000,
		HalfBathFeeCents:     2500,
		Linens: pricing.LinenFees{
			SheetFeePerBedCents: 3000,
			TowelFeeCents:       500,
			FaceClothFeeCents:   200,
		},
		TimeWindows: map[string]int64{
			"10-3": 2500,
		},
		LastMinute: pricing.LastMinuteConfig{
			FeeCents:       5000,
			ThresholdHours: 24,
		},
		Cancellation: pricing.CancellationConfig{
			FeeCents:         5000,
			WindowDays:       2,
			RefundPercentage: 0.5,
		},
		Platform: pricing.PlatformConfig{
			FeePercent: 0.2,
		},
	}
}

func mustBeds(t *testing.T, s string) pricing.BedCount {
	t.Helper()
	beds, err := pricing.ParseBedCount(s)
	require.NoError(t, err)
	return beds
}

func mustBaths(t *testing.T, s string) pricing.BathCount {
	t.Helper()
	baths, err := pricing.ParseBathCount(s)
	require.NoError(t, err)
	return baths
}

func TestQuote(t *testing.T) {
	cfg := testConfig()

	testCases := []struct {
		name       string
		beds       string
		baths      string
		linens     pricing.LinenChoice
		timeWindow string
		expected   int64
	}{
		{
			name:       "base price for one bed one bath",
			beds:       "1",
			baths:      "1",
			timeWindow: pricing.TimeWindowAnytime,
			expected:   15000,
		},
		{
			name:       "extra beds billed beyond the first",
			beds:       "3",
			baths:      "1",
			timeWindow: pricing.TimeWindowAnytime,
			expected:   25000,
		},
		{
			name:       "extra full baths billed beyond the first",
			beds:       "1",
			baths:      "3",
			timeWindow: pricing.TimeWindowAnytime,
			expected:   25000,
		},
		{
			name:       "half bath billed at the half bath fee",
			beds:       "2",
			baths:      "2.5",
			timeWindow: pricing.TimeWindowAnytime,
			expected:   27500,
		},
		{
			name:       "sheets billed for every bed, not just extras",
			beds:       "3",
			baths:      "1",
			linens:     pricing.LinenChoice{Sheets: true},
			timeWindow: pricing.TimeWindowAnytime,
			expected:   34000,
		},
		{
			name:       "default towels assume two towels and a face cloth per bath",
			beds:       "1",
			baths:      "1",
			linens:     pricing.LinenChoice{Towels: true},
			timeWindow: pricing.TimeWindowAnytime,
			expected:   16200,
		},
		{
			name:  "itemized towels override the per-bath default",
			beds:  "1",
			baths: "2",
			linens: pricing.LinenChoice{
				Towels:     true,
				TowelItems: []pricing.TowelItem{{Towels: 3, FaceCloths: 2}},
			},
			timeWindow: pricing.TimeWindowAnytime,
			expected:   21900,
		},
		{
			name:       "half bath rounds up for default towel sets",
			beds:       "1",
			baths:      "1.5",
			linens:     pricing.LinenChoice{Towels: true},
			timeWindow: pricing.TimeWindowAnytime,
			expected:   19900,
		},
		{
			name:       "time window surcharge applied",
			beds:       "1",
			baths:      "1",
			timeWindow: "10-3",
			expected:   17500,
		},
		{
			name:       "unknown time window carries no surcharge",
			beds:       "1",
			baths:      "1",
			timeWindow: "evening",
			expected:   15000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := pricing.Quote(cfg, mustBeds(t, tc.beds), mustBaths(t, tc.baths), tc.linens, tc.timeWindow)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("identical inputs always produce identical prices", func(t *testing.T) {
		beds := mustBeds(t, "4")
		baths := mustBaths(t, "3.5")
		linens := pricing.LinenChoice{Sheets: true, Towels: true}

		first := pricing.Quote(cfg, beds, baths, linens, "10-3")
		second := pricing.Quote(cfg, beds, baths, linens, "10-3")
		assert.Equal(t, first, second)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, testConfig().Validate())
	})

	t.Run("negative fee rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.ExtraBedBathFeeCents = -1
		assert.ErrorIs(t, cfg.Validate(), pricing.ErrNegativeFee)
	})

	t.Run("negative time window surcharge rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.TimeWindows["10-3"] = -500
		assert.ErrorIs(t, cfg.Validate(), pricing.ErrNegativeFee)
	})

	t.Run("refund percentage outside (0,1] rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cancellation.RefundPercentage = 1.5
		assert.ErrorIs(t, cfg.Validate(), pricing.ErrInvalidPercentage)
	})

	t.Run("platform fee percent must be positive", func(t *testing.T) {
		cfg := testConfig()
		cfg.Platform.FeePercent = 0
		assert.ErrorIs(t, cfg.Validate(), pricing.ErrInvalidPercentage)
	})
}
