package queries

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentView is the full read model for a single adjustment request.
// Photos and Trust are loaded unconditionally by the read store and
// redacted per caller before leaving the query layer.
type AdjustmentView struct {
	ID                   uuid.UUID  `json:"id"`
	AppointmentID        uuid.UUID  `json:"appointment_id"`
	HomeID               uuid.UUID  `json:"home_id"`
	CleanerID            uuid.UUID  `json:"cleaner_id"`
	HomeownerID          uuid.UUID  `json:"homeowner_id"`
	OriginalBeds         int32      `json:"original_beds"`
	OriginalBaths        float64    `json:"original_baths"`
	ReportedBeds         int32      `json:"reported_beds"`
	ReportedBaths        float64    `json:"reported_baths"`
	OriginalPriceCents   int64      `json:"original_price_cents"`
	NewPriceCents        int64      `json:"new_price_cents"`
	PriceDifferenceCents int64      `json:"price_difference_cents"`
	Status               string     `json:"status"`
	CleanerNote          string     `json:"cleaner_note"`
	HomeownerResponse    *string    `json:"homeowner_response,omitempty"`
	OwnerNote            *string    `json:"owner_note,omitempty"`
	ResolverID           *uuid.UUID `json:"resolver_id,omitempty"`
	FinalBeds            *int32     `json:"final_beds,omitempty"`
	FinalBaths           *float64   `json:"final_baths,omitempty"`
	ChargeStatus         string     `json:"charge_status"`
	PricingConfigVersion int32      `json:"pricing_config_version"`
	ExpiresAt            time.Time  `json:"expires_at"`
	Expired              bool       `json:"expired"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Photos []EvidencePhotoView `json:"photos,omitempty"`
	Trust  *TrustSignalView    `json:"trust,omitempty"`
}

type AdjustmentListItem struct {
	ID                   uuid.UUID `json:"id"`
	AppointmentID        uuid.UUID `json:"appointment_id"`
	HomeID               uuid.UUID `json:"home_id"`
	Status               string    `json:"status"`
	ReportedBeds         int32     `json:"reported_beds"`
	ReportedBaths        float64   `json:"reported_baths"`
	NewPriceCents        int64     `json:"new_price_cents"`
	PriceDifferenceCents int64     `json:"price_difference_cents"`
	ChargeStatus         string    `json:"charge_status"`
	ExpiresAt            time.Time `json:"expires_at"`
	Expired              bool      `json:"expired"`
	CreatedAt            time.Time `json:"created_at"`
}

type EvidencePhotoView struct {
	ID         uuid.UUID `json:"id"`
	RoomType   string    `json:"room_type"`
	RoomNumber int32     `json:"room_number"`
	Payload    string    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrustSignalView surfaces the tracking fields kept on the two parties to
// a dispute. It is never shown to the parties themselves.
type TrustSignalView struct {
	HomeownerFalseHomeSizeCount int32           `json:"homeowner_false_home_size_count"`
	CleanerFalseClaimCount      int32           `json:"cleaner_false_claim_count"`
	OwnerPrivateNotes           []AuditNoteView `json:"owner_private_notes,omitempty"`
}

type AuditNoteView struct {
	UserID     uuid.UUID `json:"user_id"`
	ResolverID uuid.UUID `json:"resolver_id"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
