package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
)

// NoShowSweeper marks confirmed bookings whose slot day has passed as
// no_show. It runs on a cron schedule, typically just after midnight.
type NoShowSweeper struct {
	cron     *cron.Cron
	cfg      config.SweeperConfig
	cmds     commands.BookingCommands
	bookings queries.BookingQueries
	clock    clock.Clock
}

func NewNoShowSweeper(
	cfg config.SweeperConfig,
	cmds commands.BookingCommands,
	bookings queries.BookingQueries,
	clock clock.Clock,
) *NoShowSweeper {
	return &NoShowSweeper{
		cron:     cron.New(),
		cfg:      cfg,
		cmds:     cmds,
		bookings: bookings,
		clock:    clock,
	}
}

func (s *NoShowSweeper) Start() error {
	if !s.cfg.Enabled {
		slog.Info("no-show sweeper disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("no-show sweeper started", "schedule", s.cfg.Schedule)
	return nil
}

func (s *NoShowSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep processes one batch. Bookings that race with a concurrent cancel or
// completion are skipped; they no longer qualify as no-shows.
func (s *NoShowSweeper) Sweep(ctx context.Context) {
	today := s.clock.Now()

	ids, err := s.bookings.ListOverdueConfirmed(ctx, today, int32(s.cfg.BatchSize))
	if err != nil {
		slog.Error("failed to list overdue bookings", "error", err)
		return
	}

	var marked int
	for _, id := range ids {
		if err := s.cmds.UpdateBookingStatus(ctx, id, booking.StatusNoShow); err != nil {
			slog.Warn("failed to mark booking as no-show", "booking_id", id, "error", err)
			continue
		}
		marked++
	}

	if len(ids) > 0 {
		slog.Info("no-show sweep completed", "candidates", len(ids), "marked", marked)
	}
}
