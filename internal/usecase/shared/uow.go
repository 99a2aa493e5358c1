package shared

import (
	"context"
	"time"

	"homeshine/internal/domain/adjustment"
	"homeshine/internal/domain/pricing"
	"homeshine/internal/domain/user"
	"homeshine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Adjustments() AdjustmentRepository
	Evidence() EvidenceRepository
	Homes() HomeRepository
	Appointments() AppointmentRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	HomeByID(ctx context.Context, id uuid.UUID) (*HomeSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ActivePricingConfig(ctx context.Context) (*PricingConfigSnapshot, error)
	PricingConfigByVersion(ctx context.Context, version int32) (*PricingConfigSnapshot, error)
	FutureAppointmentsForHome(ctx context.Context, homeID uuid.UUID, from time.Time) ([]*AppointmentSnapshot, error)
}

// Minimal snapshots for command read operations
type AppointmentSnapshot struct {
	ID          uuid.UUID
	HomeID      uuid.UUID
	HomeownerID uuid.UUID
	Date        time.Time
	TimeWindow  string
	Linens      pricing.LinenChoice
	PriceCents  int64
	Completed   bool
	CleanerIDs  []uuid.UUID
}

// AssignedTo reports whether the cleaner is in the appointment's
// assigned-cleaner set.
func (a *AppointmentSnapshot) AssignedTo(cleanerID uuid.UUID) bool {
	for _, id := range a.CleanerIDs {
		if id == cleanerID {
			return true
		}
	}
	return false
}

type HomeSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Beds    pricing.BedCount
	Baths   pricing.BathCount
}

type UserSnapshot struct {
	ID       uuid.UUID
	Role     user.Role
	IsActive bool
}

type PricingConfigSnapshot struct {
	Version int32
	Config  pricing.Config
}

type AdjustmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *adjustment.Request) (uuid.UUID, error)
	// FindByIDForUpdate locks the row so concurrent resolutions of the same
	// request serialize.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*adjustment.Request, error)
	Update(ctx context.Context, tx db.DBTX, req *adjustment.Request) error
	UpdateChargeStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status adjustment.ChargeStatus) error
}

type EvidenceRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, requestID uuid.UUID, photos []adjustment.EvidencePhoto) error
}

type HomeRepository interface {
	UpdateSize(ctx context.Context, tx db.DBTX, homeID uuid.UUID, beds pricing.BedCount, baths pricing.BathCount) error
}

type AppointmentRepository interface {
	UpdatePrice(ctx context.Context, tx db.DBTX, appointmentID uuid.UUID, priceCents int64) error
}

type UserRepository interface {
	IncrementFalseHomeSizeCount(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	IncrementFalseClaimCount(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	// AppendAuditNote adds one resolver-attributed entry; prior entries are
	// never overwritten or truncated.
	AppendAuditNote(ctx context.Context, tx db.DBTX, userID, resolverID uuid.UUID, note string) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type NotificationRepository interface {
	// CreateJob enqueues a delivery job for a background worker; the row
	// commits or rolls back with the workflow change it announces.
	CreateJob(ctx context.Context, tx db.DBTX, recipientID uuid.UUID, kind string, payload []byte) error
}
