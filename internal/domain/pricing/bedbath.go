package pricing

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidBedCount  = errors.New("invalid bed count")
	ErrInvalidBathCount = errors.New("invalid bath count")
)

// BedCount is a whole number of bedrooms, at least one.
type BedCount int

func NewBedCount(n int) (BedCount, error) {
	if n < 1 {
		return 0, ErrInvalidBedCount
	}
	return BedCount(n), nil
}

func (b BedCount) Int() int { return int(b) }

// BathCount is measured in half-bath units so that "2.5 baths" is exact
// integer arithmetic (5 halves) rather than a float comparison.
type BathCount int

func NewBathCount(halves int) (BathCount, error) {
	if halves < 1 {
		return 0, ErrInvalidBathCount
	}
	return BathCount(halves), nil
}

func NewBathCountFromFloat(f float64) (BathCount, error) {
	halves := f * 2
	if halves != float64(int(halves)) {
		return 0, ErrInvalidBathCount
	}
	return NewBathCount(int(halves))
}

func (b BathCount) Halves() int { return int(b) }

// Whole is the number of full bathrooms.
func (b BathCount) Whole() int { return int(b) / 2 }

func (b BathCount) HasHalf() bool { return int(b)%2 == 1 }

// Ceil rounds a trailing half bath up to a full bathroom.
func (b BathCount) Ceil() int { return (int(b) + 1) / 2 }

func (b BathCount) Float() float64 { return float64(b) / 2 }

// ParseBedCount accepts the formats bed counts arrive in at the system
// boundary: "4" and "4+" (listings advertising four or more bedrooms).
func ParseBedCount(s string) (BedCount, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidBedCount
	}
	return NewBedCount(n)
}

// ParseBathCount accepts "3", "3.5" and "3+"; fractions other than .5 are
// rejected rather than rounded.
func ParseBathCount(s string) (BathCount, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidBathCount
	}
	return NewBathCountFromFloat(f)
}
