package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"gigbook/models"
)

const TypeEventReminder = "reminder:event"

// NewEventReminderTask builds the asynq task that fires the operator's
// upcoming-event reminder at fireAt.
func NewEventReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEventReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// ReminderScheduler is a booking observer that queues an event reminder when
// a booking is confirmed. The reminder fires the morning before the event.
type ReminderScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func (rs *ReminderScheduler) BookingCreated(ctx context.Context, booking *models.Booking) {}

func (rs *ReminderScheduler) StatusChanged(ctx context.Context, booking *models.Booking, from, to models.BookingStatus) {
	if to != models.StatusConfirmed {
		return
	}

	eventDate, err := time.ParseInLocation("2006-01-02", booking.Slot.Date, time.Local)
	if err != nil {
		rs.Logger.Error("cannot schedule reminder, bad booking date",
			zap.String("booking_id", booking.ID),
			zap.String("date", booking.Slot.Date),
		)
		return
	}

	fireAt := eventDate.AddDate(0, 0, -1).Add(9 * time.Hour)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		EventType: booking.EventType,
		Date:      booking.Slot.Date,
		Start:     booking.Slot.Start,
		VenueName: booking.Venue.Name,
	}
	task, opts, err := NewEventReminderTask(payload, fireAt)
	if err != nil {
		rs.Logger.Error("failed to build reminder task", zap.Error(err))
		return
	}

	if _, err := rs.Client.EnqueueContext(ctx, task, opts...); err != nil {
		rs.Logger.Error("failed to enqueue reminder task",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
		return
	}

	rs.Logger.Info("event reminder scheduled",
		zap.String("booking_id", booking.ID),
		zap.Time("fire_at", fireAt),
	)
}
