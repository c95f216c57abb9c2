package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"clinic-booking/internal/infra/cache"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/infra/readstore"
	"clinic-booking/internal/infra/uow"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Doctor, optionally behind the LRU cache
		NewDoctorReadStore,
		// Hospital
		fx.Annotate(
			readstore.NewHospitalReadStore,
			fx.As(new(queries.HospitalReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewDoctorReadStore(dbtx db.DBTX, cfg config.Config) (queries.DoctorReadStore, error) {
	base := readstore.NewDoctorReadStore(dbtx)
	if !cfg.Cache.Enabled {
		return base, nil
	}
	return cache.NewCachedDoctorReadStore(base, cfg.Cache.Size)
}
