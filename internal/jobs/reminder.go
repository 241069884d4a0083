// Package jobs holds background schedules: currently the check-in reminder
// sweep that mirrors the 48h/24h cancellation refund windows.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-api/internal/infra/notify"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/robfig/cron/v3"
)

// reminderWindows are the hours-before-check-in marks at which a reminder
// goes out. They match the refund step function, so a guest is nudged right
// before each refund tier expires.
var reminderWindows = []int{48, 24}

const runTimeout = 30 * time.Second

type ReminderJob struct {
	reservations queries.ReservationQueries
	sender       notify.ReminderSender
	clock        clock.Clock
	schedule     string
	cron         *cron.Cron
}

func NewReminderJob(
	reservations queries.ReservationQueries,
	sender notify.ReminderSender,
	clk clock.Clock,
	schedule string,
) *ReminderJob {
	return &ReminderJob{
		reservations: reservations,
		sender:       sender,
		clock:        clk,
		schedule:     schedule,
	}
}

func (j *ReminderJob) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(j.schedule, j.run); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	slog.Info("reminder job started", "schedule", j.schedule)
	return nil
}

func (j *ReminderJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	slog.Info("reminder job stopped")
}

func (j *ReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := j.Sweep(ctx); err != nil {
		slog.Error("reminder sweep failed", "error", err.Error())
	}
}

// Sweep sends one reminder per pending reservation entering each window. The
// window is one schedule tick wide so an hourly schedule visits each
// reservation exactly once per tier.
func (j *ReminderJob) Sweep(ctx context.Context) error {
	now := j.clock.Now()

	for _, hoursAhead := range reminderWindows {
		until := now.Add(time.Duration(hoursAhead) * time.Hour)
		from := until.Add(-time.Hour)

		pending, err := j.reservations.PendingCheckInsWithin(ctx, from, until)
		if err != nil {
			return err
		}
		for _, p := range pending {
			if err := j.sender.SendCheckInReminder(ctx, hoursAhead, p); err != nil {
				slog.Warn("reminder delivery failed",
					"reservation_code", p.Code,
					"hours_ahead", hoursAhead,
					"error", err.Error())
			}
		}
	}
	return nil
}
