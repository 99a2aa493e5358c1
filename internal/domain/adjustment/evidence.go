package adjustment

import (
	"errors"
	"fmt"

	"homeshine/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNoEvidence           = errors.New("at least one evidence photo is required")
	ErrIncompletePhoto      = errors.New("evidence photo is missing room type, room number or payload")
	ErrInsufficientEvidence = errors.New("insufficient evidence photos")
)

// EvidencePhoto is created atomically with its request and immutable
// thereafter.
type EvidencePhoto struct {
	id         uuid.UUID
	requestID  uuid.UUID
	roomType   RoomType
	roomNumber int
	payload    []byte
}

func NewEvidencePhoto(roomType RoomType, roomNumber int, payload []byte) EvidencePhoto {
	return EvidencePhoto{
		id:         uuid.New(),
		roomType:   roomType,
		roomNumber: roomNumber,
		payload:    payload,
	}
}

func ReconstructEvidencePhoto(id, requestID uuid.UUID, roomType RoomType, roomNumber int, payload []byte) EvidencePhoto {
	return EvidencePhoto{
		id:         id,
		requestID:  requestID,
		roomType:   roomType,
		roomNumber: roomNumber,
		payload:    payload,
	}
}

func (p EvidencePhoto) ID() uuid.UUID        { return p.id }
func (p EvidencePhoto) RequestID() uuid.UUID { return p.requestID }
func (p EvidencePhoto) RoomType() RoomType   { return p.roomType }
func (p EvidencePhoto) RoomNumber() int      { return p.roomNumber }
func (p EvidencePhoto) Payload() []byte      { return p.payload }

// ValidateEvidence enforces the photo requirements for a claimed size, in
// the order callers expect the failures to surface: an empty set first,
// then coverage, then per-photo completeness. Coverage requires one
// bedroom photo per reported bed and one bathroom photo per reported bath,
// a half bath counting as a full one.
func ValidateEvidence(reportedBeds pricing.BedCount, reportedBaths pricing.BathCount, photos []EvidencePhoto) error {
	if len(photos) == 0 {
		return ErrNoEvidence
	}

	bedrooms := 0
	bathrooms := 0
	for _, p := range photos {
		switch p.roomType {
		case RoomBedroom:
			bedrooms++
		case RoomBathroom:
			bathrooms++
		}
	}

	if bedrooms < reportedBeds.Int() {
		return fmt.Errorf("%w: need %d bedroom photos, received %d", ErrInsufficientEvidence, reportedBeds.Int(), bedrooms)
	}
	if bathrooms < reportedBaths.Ceil() {
		return fmt.Errorf("%w: need %d bathroom photos, received %d", ErrInsufficientEvidence, reportedBaths.Ceil(), bathrooms)
	}

	for _, p := range photos {
		if !p.roomType.IsValid() || p.roomNumber < 1 || len(p.payload) == 0 {
			return ErrIncompletePhoto
		}
	}

	return nil
}
