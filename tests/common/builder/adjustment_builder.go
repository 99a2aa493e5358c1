//go:build unit || e2e

package builder

import (
	"time"

	domadjustment "homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	reqdto "homeshine/internal/handler/dto/request"
	"homeshine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdjustmentBuilder struct {
	AppointmentID      uuid.UUID
	HomeID             uuid.UUID
	CleanerID          uuid.UUID
	HomeownerID        uuid.UUID
	OriginalBeds       int
	OriginalBathHalves int
	ReportedBeds       string
	ReportedBaths      string
	OriginalPriceCents int64
	NewPriceCents      int64
	Note               string
	Status             domadjustment.Status
	ChargeStatus       domadjustment.ChargeStatus
	ConfigVersion      int32
	CreatedAt          time.Time
}

func NewAdjustmentBuilder() *AdjustmentBuilder {
	now := time.Now()
	return &AdjustmentBuilder{
		AppointmentID:      uuid.New(),
		HomeID:             uuid.New(),
		CleanerID:          uuid.New(),
		HomeownerID:        uuid.New(),
		OriginalBeds:       2,
		OriginalBathHalves: 3,
		ReportedBeds:       "3",
		ReportedBaths:      "2.5",
		OriginalPriceCents: 20000,
		NewPriceCents:      27500,
		Note:               "Third bedroom upstairs, extra full bath off the hall",
		Status:             domadjustment.StatusPendingHomeowner,
		ChargeStatus:       domadjustment.ChargePending,
		ConfigVersion:      1,
		CreatedAt:          now,
	}
}

func (a *AdjustmentBuilder) With(mutate func(*AdjustmentBuilder)) *AdjustmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AdjustmentBuilder) BuildDomain() (*domadjustment.Request, error) {
	reportedBeds, err := pricing.ParseBedCount(a.ReportedBeds)
	if err != nil {
		return nil, err
	}
	reportedBaths, err := pricing.ParseBathCount(a.ReportedBaths)
	if err != nil {
		return nil, err
	}

	return domadjustment.NewRequest(domadjustment.NewRequestParams{
		AppointmentID:        a.AppointmentID,
		HomeID:               a.HomeID,
		CleanerID:            a.CleanerID,
		HomeownerID:          a.HomeownerID,
		OriginalBeds:         pricing.BedCount(a.OriginalBeds),
		OriginalBaths:        pricing.BathCount(a.OriginalBathHalves),
		ReportedBeds:         reportedBeds,
		ReportedBaths:        reportedBaths,
		OriginalPriceCents:   a.OriginalPriceCents,
		NewPriceCents:        a.NewPriceCents,
		CleanerNote:          a.Note,
		PricingConfigVersion: a.ConfigVersion,
	}, a.CreatedAt)
}

// BuildCreateRequestDTO produces a request whose photo set covers the
// reported size: one bedroom photo per bed, one bathroom photo per bath
// with a half bath counting as a full one.
func (a *AdjustmentBuilder) BuildCreateRequestDTO() reqdto.CreateAdjustmentRequest {
	beds, _ := pricing.ParseBedCount(a.ReportedBeds)
	baths, _ := pricing.ParseBathCount(a.ReportedBaths)

	photos := make([]reqdto.EvidencePhotoRequest, 0, beds.Int()+baths.Ceil())
	for i := 1; i <= beds.Int(); i++ {
		photos = append(photos, reqdto.EvidencePhotoRequest{
			RoomType:   "bedroom",
			RoomNumber: i,
			Payload:    "photo-data",
		})
	}
	for i := 1; i <= baths.Ceil(); i++ {
		photos = append(photos, reqdto.EvidencePhotoRequest{
			RoomType:   "bathroom",
			RoomNumber: i,
			Payload:    "photo-data",
		})
	}

	return reqdto.CreateAdjustmentRequest{
		AppointmentID: a.AppointmentID,
		ReportedBeds:  a.ReportedBeds,
		ReportedBaths: a.ReportedBaths,
		Note:          a.Note,
		Photos:        photos,
	}
}

func (a *AdjustmentBuilder) BuildView() *queries.AdjustmentView {
	reportedBeds, _ := pricing.ParseBedCount(a.ReportedBeds)
	reportedBaths, _ := pricing.ParseBathCount(a.ReportedBaths)

	return &queries.AdjustmentView{
		ID:                   uuid.New(),
		AppointmentID:        a.AppointmentID,
		HomeID:               a.HomeID,
		CleanerID:            a.CleanerID,
		HomeownerID:          a.HomeownerID,
		OriginalBeds:         int32(a.OriginalBeds),
		OriginalBaths:        pricing.BathCount(a.OriginalBathHalves).Float(),
		ReportedBeds:         int32(reportedBeds.Int()),
		ReportedBaths:        reportedBaths.Float(),
		OriginalPriceCents:   a.OriginalPriceCents,
		NewPriceCents:        a.NewPriceCents,
		PriceDifferenceCents: a.NewPriceCents - a.OriginalPriceCents,
		Status:               a.Status.String(),
		CleanerNote:          a.Note,
		ChargeStatus:         a.ChargeStatus.String(),
		PricingConfigVersion: a.ConfigVersion,
		ExpiresAt:            a.CreatedAt.Add(domadjustment.ReviewWindow),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.CreatedAt,
		Photos: []queries.EvidencePhotoView{
			{ID: uuid.New(), RoomType: "bedroom", RoomNumber: 1, Payload: "photo-data", CreatedAt: a.CreatedAt},
		},
		Trust: &queries.TrustSignalView{
			HomeownerFalseHomeSizeCount: 1,
			CleanerFalseClaimCount:      0,
			OwnerPrivateNotes: []queries.AuditNoteView{
				{UserID: a.HomeownerID, ResolverID: uuid.New(), Note: "Confirmed via listing photos", CreatedAt: a.CreatedAt},
			},
		},
	}
}

func (a *AdjustmentBuilder) BuildListItem() *queries.AdjustmentListItem {
	reportedBeds, _ := pricing.ParseBedCount(a.ReportedBeds)
	reportedBaths, _ := pricing.ParseBathCount(a.ReportedBaths)

	return &queries.AdjustmentListItem{
		ID:                   uuid.New(),
		AppointmentID:        a.AppointmentID,
		HomeID:               a.HomeID,
		Status:               a.Status.String(),
		ReportedBeds:         int32(reportedBeds.Int()),
		ReportedBaths:        reportedBaths.Float(),
		NewPriceCents:        a.NewPriceCents,
		PriceDifferenceCents: a.NewPriceCents - a.OriginalPriceCents,
		ChargeStatus:         a.ChargeStatus.String(),
		ExpiresAt:            a.CreatedAt.Add(domadjustment.ReviewWindow),
		CreatedAt:            a.CreatedAt,
	}
}

// Fluent builder methods
func (a *AdjustmentBuilder) WithHomeownerID(id uuid.UUID) *AdjustmentBuilder {
	a.HomeownerID = id
	return a
}

func (a *AdjustmentBuilder) WithCleanerID(id uuid.UUID) *AdjustmentBuilder {
	a.CleanerID = id
	return a
}

func (a *AdjustmentBuilder) WithReportedSize(beds, baths string) *AdjustmentBuilder {
	a.ReportedBeds = beds
	a.ReportedBaths = baths
	return a
}

func (a *AdjustmentBuilder) WithOriginalSize(beds, bathHalves int) *AdjustmentBuilder {
	a.OriginalBeds = beds
	a.OriginalBathHalves = bathHalves
	return a
}

func (a *AdjustmentBuilder) WithStatus(status domadjustment.Status) *AdjustmentBuilder {
	a.Status = status
	return a
}

func (a *AdjustmentBuilder) WithCreatedAt(t time.Time) *AdjustmentBuilder {
	a.CreatedAt = t
	return a
}
