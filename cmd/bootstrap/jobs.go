package bootstrap

import (
	"context"

	"hotel-booking-api/internal/infra/notify"
	"hotel-booking-api/internal/jobs"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		fx.Annotate(
			notify.NewLogReminderSender,
			fx.As(new(notify.ReminderSender)),
		),
		NewReminderJob,
	),
	fx.Invoke(StartReminderJob),
)

func NewReminderJob(
	cfg config.Config,
	reservationQueries queries.ReservationQueries,
	sender notify.ReminderSender,
	clk clock.Clock,
) *jobs.ReminderJob {
	return jobs.NewReminderJob(reservationQueries, sender, clk, cfg.Booking.ReminderSchedule)
}

func StartReminderJob(lc fx.Lifecycle, job *jobs.ReminderJob) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return job.Start()
		},
		OnStop: func(_ context.Context) error {
			job.Stop()
			return nil
		},
	})
}
