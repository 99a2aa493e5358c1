package response

import (
	"time"

	"homeshine/internal/usecase/commands"
	"homeshine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdjustmentResponse struct {
	ID                   uuid.UUID               `json:"id"`
	AppointmentID        uuid.UUID               `json:"appointmentId"`
	HomeID               uuid.UUID               `json:"homeId"`
	CleanerID            uuid.UUID               `json:"cleanerId"`
	HomeownerID          uuid.UUID               `json:"homeownerId"`
	OriginalBeds         int32                   `json:"originalBeds"`
	OriginalBaths        float64                 `json:"originalBaths"`
	ReportedBeds         int32                   `json:"reportedBeds"`
	ReportedBaths        float64                 `json:"reportedBaths"`
	OriginalPriceCents   int64                   `json:"originalPriceCents"`
	NewPriceCents        int64                   `json:"newPriceCents"`
	PriceDifferenceCents int64                   `json:"priceDifferenceCents"`
	Status               string                  `json:"status"`
	CleanerNote          string                  `json:"cleanerNote"`
	HomeownerResponse    *string                 `json:"homeownerResponse,omitempty"`
	OwnerNote            *string                 `json:"ownerNote,omitempty"`
	ResolverID           *uuid.UUID              `json:"resolverId,omitempty"`
	FinalBeds            *int32                  `json:"finalBeds,omitempty"`
	FinalBaths           *float64                `json:"finalBaths,omitempty"`
	ChargeStatus         string                  `json:"chargeStatus"`
	ExpiresAt            time.Time               `json:"expiresAt"`
	Expired              bool                    `json:"expired"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
	Photos               []EvidencePhotoResponse `json:"photos,omitempty"`
	Trust                *TrustSignalResponse    `json:"trust,omitempty"`
}

type EvidencePhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomType   string    `json:"roomType"`
	RoomNumber int32     `json:"roomNumber"`
	Payload    string    `json:"payload"`
}

type TrustSignalResponse struct {
	HomeownerFalseHomeSizeCount int32               `json:"homeownerFalseHomeSizeCount"`
	CleanerFalseClaimCount      int32               `json:"cleanerFalseClaimCount"`
	OwnerPrivateNotes           []AuditNoteResponse `json:"ownerPrivateNotes,omitempty"`
}

type AuditNoteResponse struct {
	UserID     uuid.UUID `json:"userId"`
	ResolverID uuid.UUID `json:"resolverId"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AdjustmentListResponse struct {
	ID                   uuid.UUID `json:"id"`
	AppointmentID        uuid.UUID `json:"appointmentId"`
	HomeID               uuid.UUID `json:"homeId"`
	Status               string    `json:"status"`
	ReportedBeds         int32     `json:"reportedBeds"`
	ReportedBaths        float64   `json:"reportedBaths"`
	NewPriceCents        int64     `json:"newPriceCents"`
	PriceDifferenceCents int64     `json:"priceDifferenceCents"`
	ChargeStatus         string    `json:"chargeStatus"`
	ExpiresAt            time.Time `json:"expiresAt"`
	Expired              bool      `json:"expired"`
	CreatedAt            time.Time `json:"createdAt"`
}

type CreateAdjustmentResponse struct {
	ID                   uuid.UUID `json:"id"`
	Status               string    `json:"status"`
	OriginalPriceCents   int64     `json:"originalPriceCents"`
	NewPriceCents        int64     `json:"newPriceCents"`
	PriceDifferenceCents int64     `json:"priceDifferenceCents"`
	ExpiresAt            time.Time `json:"expiresAt"`
}

type HomeownerDecisionResponse struct {
	Status       string `json:"status"`
	ChargeStatus string `json:"chargeStatus"`
}

type OwnerResolveResponse struct {
	Status       string  `json:"status"`
	FinalBeds    int32   `json:"finalBeds"`
	FinalBaths   float64 `json:"finalBaths"`
	ChargeStatus string  `json:"chargeStatus"`
}

func FromAdjustmentView(rm *queries.AdjustmentView) *AdjustmentResponse {
	resp := &AdjustmentResponse{
		ID:                   rm.ID,
		AppointmentID:        rm.AppointmentID,
		HomeID:               rm.HomeID,
		CleanerID:            rm.CleanerID,
		HomeownerID:          rm.HomeownerID,
		OriginalBeds:         rm.OriginalBeds,
		OriginalBaths:        rm.OriginalBaths,
		ReportedBeds:         rm.ReportedBeds,
		ReportedBaths:        rm.ReportedBaths,
		OriginalPriceCents:   rm.OriginalPriceCents,
		NewPriceCents:        rm.NewPriceCents,
		PriceDifferenceCents: rm.PriceDifferenceCents,
		Status:               rm.Status,
		CleanerNote:          rm.CleanerNote,
		HomeownerResponse:    rm.HomeownerResponse,
		OwnerNote:            rm.OwnerNote,
		ResolverID:           rm.ResolverID,
		FinalBeds:            rm.FinalBeds,
		FinalBaths:           rm.FinalBaths,
		ChargeStatus:         rm.ChargeStatus,
		ExpiresAt:            rm.ExpiresAt,
		Expired:              rm.Expired,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}

	for _, p := range rm.Photos {
		resp.Photos = append(resp.Photos, EvidencePhotoResponse{
			ID:         p.ID,
			RoomType:   p.RoomType,
			RoomNumber: p.RoomNumber,
			Payload:    p.Payload,
		})
	}
	if rm.Trust != nil {
		trust := &TrustSignalResponse{
			HomeownerFalseHomeSizeCount: rm.Trust.HomeownerFalseHomeSizeCount,
			CleanerFalseClaimCount:      rm.Trust.CleanerFalseClaimCount,
		}
		for _, n := range rm.Trust.OwnerPrivateNotes {
			trust.OwnerPrivateNotes = append(trust.OwnerPrivateNotes, AuditNoteResponse{
				UserID:     n.UserID,
				ResolverID: n.ResolverID,
				Note:       n.Note,
				CreatedAt:  n.CreatedAt,
			})
		}
		resp.Trust = trust
	}

	return resp
}

func FromAdjustmentListItem(rm *queries.AdjustmentListItem) *AdjustmentListResponse {
	return &AdjustmentListResponse{
		ID:                   rm.ID,
		AppointmentID:        rm.AppointmentID,
		HomeID:               rm.HomeID,
		Status:               rm.Status,
		ReportedBeds:         rm.ReportedBeds,
		ReportedBaths:        rm.ReportedBaths,
		NewPriceCents:        rm.NewPriceCents,
		PriceDifferenceCents: rm.PriceDifferenceCents,
		ChargeStatus:         rm.ChargeStatus,
		ExpiresAt:            rm.ExpiresAt,
		Expired:              rm.Expired,
		CreatedAt:            rm.CreatedAt,
	}
}

func FromCreateAdjustmentResult(result *commands.CreateAdjustmentResult) *CreateAdjustmentResponse {
	return &CreateAdjustmentResponse{
		ID:                   result.RequestID,
		Status:               result.Status.String(),
		OriginalPriceCents:   result.OriginalPriceCents,
		NewPriceCents:        result.NewPriceCents,
		PriceDifferenceCents: result.PriceDifferenceCents,
		ExpiresAt:            result.ExpiresAt,
	}
}

func FromRespondResult(result *commands.RespondResult) *HomeownerDecisionResponse {
	return &HomeownerDecisionResponse{
		Status:       result.Status.String(),
		ChargeStatus: result.ChargeStatus.String(),
	}
}

func FromResolveResult(result *commands.ResolveResult) *OwnerResolveResponse {
	return &OwnerResolveResponse{
		Status:       result.Status.String(),
		FinalBeds:    int32(result.FinalBeds.Int()),
		FinalBaths:   result.FinalBaths.Float(),
		ChargeStatus: result.ChargeStatus.String(),
	}
}
