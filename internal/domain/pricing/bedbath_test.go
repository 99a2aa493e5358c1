//go:build unit

package pricing_test

import (
	"testing"

	"homeshine/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBedCount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
		errIs    error
	}{
		{name: "plain number", input: "4", expected: 4},
		{name: "plus suffix", input: "4+", expected: 4},
		{name: "surrounding whitespace", input: " 3 ", expected: 3},
		{name: "zero rejected", input: "0", errIs: pricing.ErrInvalidBedCount},
		{name: "negative rejected", input: "-1", errIs: pricing.ErrInvalidBedCount},
		{name: "non-numeric rejected", input: "four", errIs: pricing.ErrInvalidBedCount},
		{name: "fractional rejected", input: "2.5", errIs: pricing.ErrInvalidBedCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			beds, err := pricing.ParseBedCount(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, beds.Int())
		})
	}
}

func TestParseBathCount(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedHalves int
		errIs          error
	}{
		{name: "whole number", input: "3", expectedHalves: 6},
		{name: "half bath", input: "3.5", expectedHalves: 7},
		{name: "plus suffix", input: "2+", expectedHalves: 4},
		{name: "half only", input: "0.5", expectedHalves: 1},
		{name: "zero rejected", input: "0", errIs: pricing.ErrInvalidBathCount},
		{name: "non-half fraction rejected", input: "3.3", errIs: pricing.ErrInvalidBathCount},
		{name: "quarter fraction rejected", input: "2.25", errIs: pricing.ErrInvalidBathCount},
		{name: "non-numeric rejected", input: "two", errIs: pricing.ErrInvalidBathCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			baths, err := pricing.ParseBathCount(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHalves, baths.Halves())
		})
	}
}

func TestBathCountArithmetic(t *testing.T) {
	t.Run("whole bath count", func(t *testing.T) {
		baths, err := pricing.NewBathCount(5) // 2.5 baths
		require.NoError(t, err)

		assert.Equal(t, 2, baths.Whole())
		assert.True(t, baths.HasHalf())
		assert.Equal(t, 3, baths.Ceil())
		assert.Equal(t, 2.5, baths.Float())
	})

	t.Run("no half bath", func(t *testing.T) {
		baths, err := pricing.NewBathCount(4) // 2 baths
		require.NoError(t, err)

		assert.Equal(t, 2, baths.Whole())
		assert.False(t, baths.HasHalf())
		assert.Equal(t, 2, baths.Ceil())
		assert.Equal(t, 2.0, baths.Float())
	})

	t.Run("from float", func(t *testing.T) {
		baths, err := pricing.NewBathCountFromFloat(1.5)
		require.NoError(t, err)
		assert.Equal(t, 3, baths.Halves())

		_, err = pricing.NewBathCountFromFloat(1.3)
		assert.ErrorIs(t, err, pricing.ErrInvalidBathCount)
	})
}
