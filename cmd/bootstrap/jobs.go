package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"clinic-booking/internal/jobs"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewNoShowSweeper,
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, sweeper *jobs.NoShowSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
