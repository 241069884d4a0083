package notify

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/usecase/queries"
)

// ReminderSender delivers upcoming check-in reminders. The log implementation
// stands in for an email or SMS gateway.
type ReminderSender interface {
	SendCheckInReminder(ctx context.Context, hoursAhead int, pending queries.PendingCheckInView) error
}

type LogReminderSender struct{}

func NewLogReminderSender() *LogReminderSender {
	return &LogReminderSender{}
}

func (s *LogReminderSender) SendCheckInReminder(_ context.Context, hoursAhead int, pending queries.PendingCheckInView) error {
	slog.Info("check-in reminder",
		"hours_ahead", hoursAhead,
		"reservation_code", pending.Code,
		"guest", pending.GuestName,
		"hotel", pending.HotelName,
		"room", pending.RoomNumber,
		"check_in", pending.CheckIn.Format("2006-01-02"),
	)
	return nil
}
