package notification

import (
	"context"

	"gigbook/models"

	"go.uber.org/zap"
)

// BookingObserver is how the scheduling core tells sibling components that
// booking state changed. Interested parties register explicitly; there is no
// ambient event bus.
type BookingObserver interface {
	BookingCreated(ctx context.Context, booking *models.Booking)
	StatusChanged(ctx context.Context, booking *models.Booking, from, to models.BookingStatus)
}

// LogObserver records booking activity in the operator's log. It is the
// baseline observer; delivery channels layer on top of it via MultiObserver.
type LogObserver struct {
	Logger *zap.Logger
}

func (o *LogObserver) BookingCreated(_ context.Context, booking *models.Booking) {
	o.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("event_type", booking.EventType),
		zap.String("slot", booking.Slot.String()),
		zap.Int("price", booking.Price),
	)
}

func (o *LogObserver) StatusChanged(_ context.Context, booking *models.Booking, from, to models.BookingStatus) {
	o.Logger.Info("booking status changed",
		zap.String("booking_id", booking.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
}

// MultiObserver fans out to each registered observer in order.
type MultiObserver []BookingObserver

func (m MultiObserver) BookingCreated(ctx context.Context, booking *models.Booking) {
	for _, o := range m {
		o.BookingCreated(ctx, booking)
	}
}

func (m MultiObserver) StatusChanged(ctx context.Context, booking *models.Booking, from, to models.BookingStatus) {
	for _, o := range m {
		o.StatusChanged(ctx, booking, from, to)
	}
}
