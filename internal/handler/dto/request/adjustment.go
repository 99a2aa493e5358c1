package request

import (
	"github.com/google/uuid"
)

// Bed and bath counts arrive as listing-style strings ("4", "3.5", "2+");
// they are parsed into typed values before any pricing computation.
type CreateAdjustmentRequest struct {
	AppointmentID uuid.UUID              `json:"appointment_id" binding:"required"`
	ReportedBeds  string                 `json:"reported_beds" binding:"required"`
	ReportedBaths string                 `json:"reported_baths" binding:"required"`
	Note          string                 `json:"note,omitempty"`
	Photos        []EvidencePhotoRequest `json:"photos"`
}

type EvidencePhotoRequest struct {
	RoomType   string `json:"room_type"`
	RoomNumber int    `json:"room_number"`
	Payload    string `json:"payload"`
}

type HomeownerResponseRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Reason  string `json:"reason,omitempty"`
}

type OwnerResolveRequest struct {
	Approve    *bool   `json:"approve" binding:"required"`
	OwnerNote  string  `json:"owner_note" binding:"required"`
	FinalBeds  *string `json:"final_beds,omitempty"`
	FinalBaths *string `json:"final_baths,omitempty"`
}
