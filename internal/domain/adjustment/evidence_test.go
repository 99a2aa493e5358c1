//go:build unit

package adjustment_test

import (
	"testing"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoSet(bedrooms, bathrooms int) []adjustment.EvidencePhoto {
	photos := make([]adjustment.EvidencePhoto, 0, bedrooms+bathrooms)
	for i := 1; i <= bedrooms; i++ {
		photos = append(photos, adjustment.NewEvidencePhoto(adjustment.RoomBedroom, i, []byte("photo")))
	}
	for i := 1; i <= bathrooms; i++ {
		photos = append(photos, adjustment.NewEvidencePhoto(adjustment.RoomBathroom, i, []byte("photo")))
	}
	return photos
}

func TestValidateEvidence(t *testing.T) {
	beds := pricing.BedCount(3)
	baths := pricing.BathCount(5) // 2.5 baths, so three bathroom photos required

	t.Run("full coverage passes", func(t *testing.T) {
		require.NoError(t, adjustment.ValidateEvidence(beds, baths, photoSet(3, 3)))
	})

	t.Run("extra photos are fine", func(t *testing.T) {
		require.NoError(t, adjustment.ValidateEvidence(beds, baths, photoSet(5, 4)))
	})

	t.Run("empty set fails first", func(t *testing.T) {
		err := adjustment.ValidateEvidence(beds, baths, nil)
		assert.ErrorIs(t, err, adjustment.ErrNoEvidence)
	})

	t.Run("bedroom coverage reported with counts", func(t *testing.T) {
		err := adjustment.ValidateEvidence(beds, baths, photoSet(2, 3))
		require.ErrorIs(t, err, adjustment.ErrInsufficientEvidence)
		assert.Contains(t, err.Error(), "need 3 bedroom photos, received 2")
	})

	t.Run("half bath counts as a full bathroom", func(t *testing.T) {
		err := adjustment.ValidateEvidence(beds, baths, photoSet(3, 2))
		require.ErrorIs(t, err, adjustment.ErrInsufficientEvidence)
		assert.Contains(t, err.Error(), "need 3 bathroom photos, received 2")
	})

	t.Run("coverage is checked before photo completeness", func(t *testing.T) {
		photos := []adjustment.EvidencePhoto{
			adjustment.NewEvidencePhoto(adjustment.RoomBedroom, 0, nil),
		}
		err := adjustment.ValidateEvidence(beds, baths, photos)
		assert.ErrorIs(t, err, adjustment.ErrInsufficientEvidence)
	})

	t.Run("incomplete photo fails after coverage", func(t *testing.T) {
		photos := photoSet(3, 2)
		photos = append(photos, adjustment.NewEvidencePhoto(adjustment.RoomBathroom, 3, nil))
		err := adjustment.ValidateEvidence(beds, baths, photos)
		assert.ErrorIs(t, err, adjustment.ErrIncompletePhoto)
	})

	t.Run("room number below one is incomplete", func(t *testing.T) {
		photos := photoSet(3, 2)
		photos = append(photos, adjustment.NewEvidencePhoto(adjustment.RoomBathroom, 0, []byte("photo")))
		err := adjustment.ValidateEvidence(beds, baths, photos)
		assert.ErrorIs(t, err, adjustment.ErrIncompletePhoto)
	})
}
