package components

import (
	"homeshine/internal/infra/db"
	"homeshine/internal/infra/payment"
	"homeshine/internal/infra/readstore"
	"homeshine/internal/infra/repository"
	"homeshine/internal/infra/uow"
	"homeshine/internal/pkg/config"
	"homeshine/internal/usecase/commands"
	"homeshine/internal/usecase/queries"
	"homeshine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Write-side repositories used outside transactions
		fx.Annotate(
			repository.NewAdjustmentRepository,
			fx.As(new(shared.AdjustmentRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(shared.AppointmentRepository)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewAdjustmentReadStore,
			fx.As(new(queries.AdjustmentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Payment gateway
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Payment)
}
